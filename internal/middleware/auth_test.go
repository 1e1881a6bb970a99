package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"norms-hub/auth"
	apierrors "norms-hub/internal/errors"
	"norms-hub/internal/session"
	"norms-hub/internal/user"
)

// mock implementation of the user.Service interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, input *user.User) (*user.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id string, input *user.User) (*user.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestSessions() *session.Store {
	// Nothing listens on this port; the store degrades to in-memory.
	return session.New("127.0.0.1:1", time.Minute)
}

func authRouter(secret string, sessions *session.Store, users user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/profile", Auth(secret, sessions, users), func(c *gin.Context) {
		current, _ := user.FromContext(c)
		c.JSON(http.StatusOK, current)
	})
	return router
}

// TestAuth_Success tests a valid token with a live session
func TestAuth_Success(t *testing.T) {
	sessions := newTestSessions()
	users := new(MockUserService)
	users.On("Get", mock.Anything, "demo-admin").
		Return(&user.User{ID: "demo-admin", Role: user.RoleAdmin}, nil)
	router := authRouter("secret", sessions, users)

	sid, err := sessions.Create(context.Background(), "demo-admin")
	require.NoError(t, err)
	token, err := auth.GenerateToken("secret", sid, "demo-admin", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// TestAuth_MissingHeader tests a request without Authorization
func TestAuth_MissingHeader(t *testing.T) {
	router := authRouter("secret", newTestSessions(), new(MockUserService))

	req := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestAuth_SessionGone tests a valid token whose session was deleted
func TestAuth_SessionGone(t *testing.T) {
	sessions := newTestSessions()
	router := authRouter("secret", sessions, new(MockUserService))

	token, err := auth.GenerateToken("secret", "stale-session", "demo-admin", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestAuth_ProfileDeleted tests a live session whose profile no longer exists
func TestAuth_ProfileDeleted(t *testing.T) {
	sessions := newTestSessions()
	users := new(MockUserService)
	users.On("Get", mock.Anything, "demo-user").
		Return(nil, apierrors.NotFound("Profile not found", nil))
	router := authRouter("secret", sessions, users)

	sid, err := sessions.Create(context.Background(), "demo-user")
	require.NoError(t, err)
	token, err := auth.GenerateToken("secret", sid, "demo-user", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestRequireRole tests role gating for each role
func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		role     user.Role
		expected int
	}{
		{"admin allowed", user.RoleAdmin, http.StatusOK},
		{"editor allowed", user.RoleEditor, http.StatusOK},
		{"user forbidden", user.RoleUser, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/norms", func(c *gin.Context) {
				c.Set(user.ContextKey, user.User{ID: "x", Role: tc.role})
			}, RequireRole(user.RoleAdmin, user.RoleEditor), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest("POST", "/norms", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expected, w.Code)
		})
	}
}

// TestRequireRole_NoProfile tests role gating without an authenticated profile
func TestRequireRole_NoProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/users", RequireRole(user.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/users", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
