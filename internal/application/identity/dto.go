package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/inventaris/backend/internal/domain/identity"
)

// SignUpRequest represents a self-service registration request
type SignUpRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignInRequest represents a login request
type SignInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignInResponse carries the authenticated user and the issued token.
// The HTTP layer sets the token as an HttpOnly cookie.
type SignInResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"-"`
	ExpiresAt time.Time    `json:"-"`
}

// CreateUserRequest represents an administrative user creation request
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// UpdateUserRequest represents an administrative user update request.
// Empty fields are left unchanged.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserResponse represents a user in API responses. Password hashes are
// never serialized.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListUsersRequest represents filter options for the user list
type ListUsersRequest struct {
	StartIndex int    `form:"startIndex" binding:"omitempty,min=0"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Order      string `form:"order" binding:"omitempty,oneof=asc desc"`
	SearchTerm string `form:"searchTerm"`
}

// ListUsersResponse represents a page of users with dashboard totals
type ListUsersResponse struct {
	Users          []UserResponse `json:"users"`
	TotalUsers     int64          `json:"totalUsers"`
	LastMonthUsers int64          `json:"lastMonthUsers"`
}

func toUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
