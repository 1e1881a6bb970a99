package user_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apierrors "norms-hub/internal/errors"
	"norms-hub/internal/middleware"
	"norms-hub/internal/session"
	"norms-hub/internal/user"
)

// mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, input *user.User) (*user.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id string, input *user.User) (*user.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	return router
}

func newTestSessions() *session.Store {
	// Nothing listens on this port; the store degrades to in-memory.
	return session.New("127.0.0.1:1", time.Minute)
}

// TestLogin_Success tests selecting an existing profile
func TestLogin_Success(t *testing.T) {
	mockService := new(MockService)
	handler := user.NewHandler(mockService, newTestSessions(), "secret", time.Hour)
	router := setupRouter()

	selected := &user.User{ID: "demo-admin", Name: "Administrador Demo", Role: user.RoleAdmin, Area: "General"}
	mockService.On("Get", mock.Anything, "demo-admin").Return(selected, nil)

	router.POST("/login", handler.Login)

	body, _ := json.Marshal(user.FormLogin{UserID: "demo-admin"})
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]json.RawMessage
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.NotEmpty(t, response["token"])
	assert.NotEmpty(t, response["user"])
	mockService.AssertExpectations(t)
}

// TestLogin_UnknownProfile tests selecting a profile that does not exist
func TestLogin_UnknownProfile(t *testing.T) {
	mockService := new(MockService)
	handler := user.NewHandler(mockService, newTestSessions(), "secret", time.Hour)
	router := setupRouter()

	mockService.On("Get", mock.Anything, "ghost").
		Return(nil, apierrors.NotFound("Profile not found", nil))

	router.POST("/login", handler.Login)

	body, _ := json.Marshal(user.FormLogin{UserID: "ghost"})
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestLogin_MissingUserID tests login without a selection
func TestLogin_MissingUserID(t *testing.T) {
	mockService := new(MockService)
	handler := user.NewHandler(mockService, newTestSessions(), "secret", time.Hour)
	router := setupRouter()

	router.POST("/login", handler.Login)

	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Get")
}

// TestGetProfile_Success tests returning the selected profile
func TestGetProfile_Success(t *testing.T) {
	mockService := new(MockService)
	handler := user.NewHandler(mockService, newTestSessions(), "secret", time.Hour)
	router := setupRouter()

	router.GET("/profile", func(c *gin.Context) {
		c.Set(user.ContextKey, user.User{ID: "demo-editor", Role: user.RoleEditor})
		handler.GetProfile(c)
	})

	req := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response user.User
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "demo-editor", response.ID)
}

// TestGetProfile_Unauthenticated tests the profile endpoint without a session
func TestGetProfile_Unauthenticated(t *testing.T) {
	mockService := new(MockService)
	handler := user.NewHandler(mockService, newTestSessions(), "secret", time.Hour)
	router := setupRouter()

	router.GET("/profile", handler.GetProfile)

	req := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestCreateUser_InvalidRole tests creation with an unknown role
func TestCreateUser_InvalidRole(t *testing.T) {
	mockService := new(MockService)
	handler := user.NewHandler(mockService, newTestSessions(), "secret", time.Hour)
	router := setupRouter()

	router.POST("/users", handler.Create)

	body, _ := json.Marshal(map[string]string{
		"name":  "Nueva",
		"email": "nueva@retail.com.ar",
		"role":  "SUPERADMIN",
		"area":  "General",
	})
	req := httptest.NewRequest("POST", "/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

// TestCreateUser_Success tests registering a profile
func TestCreateUser_Success(t *testing.T) {
	mockService := new(MockService)
	handler := user.NewHandler(mockService, newTestSessions(), "secret", time.Hour)
	router := setupRouter()

	mockService.On("Create", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
		return u.Email == "nueva@retail.com.ar" && u.Role == user.RoleUser
	})).Return(&user.User{ID: "demo-1", Email: "nueva@retail.com.ar"}, nil)

	router.POST("/users", handler.Create)

	body, _ := json.Marshal(user.FormUser{
		Name:  "Nueva Colaboradora",
		Email: "nueva@retail.com.ar",
		Role:  user.RoleUser,
		Area:  "Comercial",
	})
	req := httptest.NewRequest("POST", "/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

// TestDeleteUser_LastAdmin tests the 422 surfaced for the last administrator
func TestDeleteUser_LastAdmin(t *testing.T) {
	mockService := new(MockService)
	handler := user.NewHandler(mockService, newTestSessions(), "secret", time.Hour)
	router := setupRouter()

	mockService.On("Delete", mock.Anything, "demo-admin").
		Return(apierrors.UnprocessableEntity("Cannot delete the last administrator", nil))

	router.DELETE("/users/:id", handler.Delete)

	req := httptest.NewRequest("DELETE", "/users/demo-admin", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// TestDeleteUser_Success tests removing a profile
func TestDeleteUser_Success(t *testing.T) {
	mockService := new(MockService)
	handler := user.NewHandler(mockService, newTestSessions(), "secret", time.Hour)
	router := setupRouter()

	mockService.On("Delete", mock.Anything, "demo-user").Return(nil)

	router.DELETE("/users/:id", handler.Delete)

	req := httptest.NewRequest("DELETE", "/users/demo-user", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}
