package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"norms-hub/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Show returns the metrics snapshot for the admin console.
func (h *Handler) Show(c *gin.Context) {
	viewer, _ := user.FromContext(c)

	metrics, err := h.service.Snapshot(c.Request.Context(), viewer)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
