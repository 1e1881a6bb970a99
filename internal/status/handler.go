// Package status reports store connectivity for user-facing messaging. The
// probe result never drives mode selection; it only explains it.
package status

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"norms-hub/internal/datasource"
	"norms-hub/internal/db"
)

var messages = map[db.Status]string{
	db.StatusConnected:     "Remote store connected.",
	db.StatusTablesMissing: "Remote store reachable, but the expected tables are missing. Run the schema setup script.",
	db.StatusUnreachable:   "Remote store unreachable. Check credentials and connectivity.",
	db.StatusUnconfigured:  "Remote store not configured. Running in demo mode.",
}

type Handler struct {
	gdb   *gorm.DB
	state *datasource.State
}

func NewHandler(gdb *gorm.DB, state *datasource.State) *Handler {
	return &Handler{gdb: gdb, state: state}
}

// Show probes the remote store and reports per-collection demo flags.
func (h *Handler) Show(c *gin.Context) {
	probed := db.Probe(c.Request.Context(), h.gdb)

	c.JSON(http.StatusOK, gin.H{
		"store":   probed,
		"message": messages[probed],
		"demo": gin.H{
			"norms": h.state.Demo(datasource.Norms),
			"users": h.state.Demo(datasource.Users),
			"areas": h.state.Demo(datasource.Areas),
		},
	})
}
