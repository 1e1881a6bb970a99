package area

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"norms-hub/internal/errors"
)

// Handler handles HTTP requests for the area catalog.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// FormArea represents area create/edit form data.
type FormArea struct {
	Name        string `json:"name" binding:"required,min=1,max=120"`
	Description string `json:"description"`
}

// List returns the catalog, General first.
func (h *Handler) List(c *gin.Context) {
	areas, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, areas)
}

func (h *Handler) Create(c *gin.Context) {
	var form FormArea
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(errors.BadRequest("Invalid input", err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), &Area{
		Name:        form.Name,
		Description: form.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) Update(c *gin.Context) {
	var form FormArea
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(errors.BadRequest("Invalid input", err))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &Area{
		Name:        form.Name,
		Description: form.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
