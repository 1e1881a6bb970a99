package user

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"norms-hub/auth"
	"norms-hub/internal/errors"
	"norms-hub/internal/session"
)

// Handler handles HTTP requests for profiles and the session lifecycle.
type Handler struct {
	service   Service
	sessions  *session.Store
	jwtSecret string
	tokenTTL  time.Duration
}

func NewHandler(service Service, sessions *session.Store, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{
		service:   service,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// FormLogin selects a profile from the authoritative list.
type FormLogin struct {
	UserID string `json:"user_id" binding:"required"`
}

// FormUser represents profile create/edit form data.
type FormUser struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  Role   `json:"role" binding:"required,oneof=ADMIN EDITOR USER"`
	Area  string `json:"area" binding:"required"`
}

// Login selects a profile and opens a session for it.
func (h *Handler) Login(c *gin.Context) {
	var form FormLogin
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(errors.BadRequest("Invalid input", err))
		return
	}

	selected, err := h.service.Get(c.Request.Context(), form.UserID)
	if err != nil {
		c.Error(errors.Unauthorized("Unknown profile", err))
		return
	}

	sid, err := h.sessions.Create(c.Request.Context(), selected.ID)
	if err != nil {
		c.Error(errors.Internal(err))
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, sid, selected.ID, h.tokenTTL)
	if err != nil {
		c.Error(errors.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  selected,
	})
}

// Logout closes the current session.
func (h *Handler) Logout(c *gin.Context) {
	if sid := c.GetString("session_id"); sid != "" {
		h.sessions.Delete(c.Request.Context(), sid)
	}
	c.Status(http.StatusNoContent)
}

// GetProfile returns the currently selected profile.
func (h *Handler) GetProfile(c *gin.Context) {
	current, ok := FromContext(c)
	if !ok {
		c.Error(errors.Unauthorized("Unauthorized", nil))
		return
	}
	c.JSON(http.StatusOK, current)
}

// List returns all profiles.
func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create registers a new profile.
func (h *Handler) Create(c *gin.Context) {
	var form FormUser
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(errors.BadRequest("Invalid input", err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), &User{
		Name:  form.Name,
		Email: form.Email,
		Role:  form.Role,
		Area:  form.Area,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update edits an existing profile.
func (h *Handler) Update(c *gin.Context) {
	var form FormUser
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(errors.BadRequest("Invalid input", err))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &User{
		Name:  form.Name,
		Email: form.Email,
		Role:  form.Role,
		Area:  form.Area,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a profile. The last administrator can never be removed.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
