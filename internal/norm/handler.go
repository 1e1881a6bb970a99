package norm

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"norms-hub/internal/ai"
	"norms-hub/internal/errors"
	"norms-hub/internal/user"
)

// Handler handles HTTP requests for norms.
type Handler struct {
	service Service
	gemini  *ai.Client
}

func NewHandler(service Service, gemini *ai.Client) *Handler {
	return &Handler{service: service, gemini: gemini}
}

// FormNorm represents norm create/edit form data.
type FormNorm struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Code        string   `json:"code" binding:"required"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	FileURL     string   `json:"fileUrl"`
	Area        string   `json:"area" binding:"required"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status" binding:"omitempty,oneof=published draft archived"`
}

func (f *FormNorm) toNorm() *Norm {
	version := f.Version
	if version == "" {
		version = "1.0"
	}
	return &Norm{
		Title:       f.Title,
		Code:        f.Code,
		Version:     version,
		Description: f.Description,
		Content:     f.Content,
		FileURL:     f.FileURL,
		Area:        f.Area,
		Tags:        f.Tags,
		Status:      f.Status,
	}
}

// List returns the norms visible to the current profile, optionally scoped to
// an area and filtered by a free-text query.
func (h *Handler) List(c *gin.Context) {
	viewer, _ := user.FromContext(c)

	norms, err := h.service.List(c.Request.Context(), viewer, ListOptions{
		Area:  c.Query("area"),
		Query: c.Query("q"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, norms)
}

// Show returns a single norm, subject to visibility.
func (h *Handler) Show(c *gin.Context) {
	viewer, _ := user.FromContext(c)

	n, err := h.service.Get(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// Create registers a new norm.
func (h *Handler) Create(c *gin.Context) {
	var form FormNorm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(errors.BadRequest("Invalid input", err))
		return
	}

	input := form.toNorm()
	if viewer, ok := user.FromContext(c); ok {
		input.CreatedBy = viewer.ID
	}

	created, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update edits an existing norm.
func (h *Handler) Update(c *gin.Context) {
	var form FormNorm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(errors.BadRequest("Invalid input", err))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), form.toNorm())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a norm.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Summarize returns an AI executive summary for a norm. Failures degrade to a
// fixed placeholder, never to an error.
func (h *Handler) Summarize(c *gin.Context) {
	viewer, _ := user.FromContext(c)

	n, err := h.service.Get(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	summary := h.gemini.Summarize(c.Request.Context(), n.Title, n.Description)
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// SmartSearch asks the AI collaborator which visible norms best match the
// query and returns those norms. An unreachable collaborator yields an empty
// list.
func (h *Handler) SmartSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.Error(errors.BadRequest("Missing query", nil))
		return
	}

	viewer, _ := user.FromContext(c)
	norms, err := h.service.List(c.Request.Context(), viewer, ListOptions{})
	if err != nil {
		c.Error(err)
		return
	}

	var listing strings.Builder
	for _, n := range norms {
		fmt.Fprintf(&listing, "%s: %s (%s)\n", n.ID, n.Title, n.Description)
	}

	ids := h.gemini.SmartSearch(c.Request.Context(), query, listing.String())
	matched := make([]Norm, 0, len(ids))
	for _, id := range ids {
		for _, n := range norms {
			if n.ID == id {
				matched = append(matched, n)
				break
			}
		}
	}
	c.JSON(http.StatusOK, matched)
}
