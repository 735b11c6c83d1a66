package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	identityapp "github.com/inventaris/backend/internal/application/identity"
	domidentity "github.com/inventaris/backend/internal/domain/identity"
)

func setupUserRouter(actor domidentity.Actor) (*gin.Engine, *MockUserRepository) {
	userRepo := new(MockUserRepository)
	service := identityapp.NewUserService(userRepo)
	h := NewUserHandler(service)

	router := gin.New()
	router.Use(actorMiddleware(actor))
	router.POST("/users", h.Create)
	router.GET("/users", h.List)
	router.PUT("/users/:userId", h.Update)
	router.DELETE("/users/:userId", h.Delete)

	return router, userRepo
}

func createUserBody(t *testing.T, username, role string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(identityapp.CreateUserRequest{
		Username: username,
		Password: "rahasia-123",
		Role:     role,
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("creates a user as admin", func(t *testing.T) {
		router, userRepo := setupUserRouter(adminActor())

		userRepo.On("ExistsByUsername", mock.Anything, "siti").Return(false, nil)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		req, _ := http.NewRequest(http.MethodPost, "/users", createUserBody(t, "siti", "user"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "siti", data["username"])

		userRepo.AssertExpectations(t)
	})

	t.Run("rejects non-admin actors", func(t *testing.T) {
		router, _ := setupUserRouter(staffActor())

		req, _ := http.NewRequest(http.MethodPost, "/users", createUserBody(t, "siti", "user"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rejects the admin role at creation", func(t *testing.T) {
		router, _ := setupUserRouter(adminActor())

		req, _ := http.NewRequest(http.MethodPost, "/users", createUserBody(t, "siti", "admin"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_ROLE", resp.Error.Code)
	})
}

func TestUserHandler_List(t *testing.T) {
	router, userRepo := setupUserRouter(adminActor())

	users := []domidentity.User{
		{Username: "budi", Role: domidentity.RoleUser},
		{Username: "siti", Role: domidentity.RoleGuest},
	}
	userRepo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(users, nil)
	userRepo.On("Count", mock.Anything).Return(int64(15), nil)
	userRepo.On("CountCreatedSince", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(4), nil)

	req, _ := http.NewRequest(http.MethodGet, "/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(15), data["totalUsers"])
	assert.Equal(t, float64(4), data["lastMonthUsers"])
	assert.Len(t, data["users"], 2)

	// Password hashes never reach the response
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestUserHandler_Update(t *testing.T) {
	t.Run("promotes a user to admin", func(t *testing.T) {
		router, userRepo := setupUserRouter(adminActor())

		user, err := domidentity.NewUser("budi", "rahasia-123", domidentity.RoleUser)
		require.NoError(t, err)
		user.ID = uuid.New()
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		body, _ := json.Marshal(identityapp.UpdateUserRequest{Role: "admin"})
		req, _ := http.NewRequest(http.MethodPut, "/users/"+user.ID.String(), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "admin", data["role"])
		assert.Equal(t, true, data["isAdmin"])
	})

	t.Run("returns 404 for an unknown user", func(t *testing.T) {
		router, userRepo := setupUserRouter(adminActor())

		id := uuid.New()
		userRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

		body, _ := json.Marshal(identityapp.UpdateUserRequest{Username: "baru"})
		req, _ := http.NewRequest(http.MethodPut, "/users/"+id.String(), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_Delete(t *testing.T) {
	router, userRepo := setupUserRouter(adminActor())

	user, err := domidentity.NewUser("budi", "rahasia-123", domidentity.RoleUser)
	require.NoError(t, err)
	user.ID = uuid.New()
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Delete", mock.Anything, user.ID).Return(nil)

	req, _ := http.NewRequest(http.MethodDelete, "/users/"+user.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	userRepo.AssertExpectations(t)
}
