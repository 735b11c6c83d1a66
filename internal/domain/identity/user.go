package identity

import (
	"regexp"
	"strings"

	"github.com/inventaris/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role represents a user's role tier
type Role string

const (
	// RoleAdmin has full access including user management
	RoleAdmin Role = "admin"
	// RoleUser may manage inventory but not users
	RoleUser Role = "user"
	// RoleGuest is the lowest tier; read access only unless the admin flag is set
	RoleGuest Role = "guest"
)

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// IsValid returns true for any recognized role
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser || r == RoleGuest
}

// IsAssignable returns true for roles that can be assigned at creation.
// Admin accounts are only produced by promoting an existing user.
func (r Role) IsAssignable() bool {
	return r == RoleUser || r == RoleGuest
}

// bcrypt cost matches the legacy system's hashing rounds
const bcryptCost = 10

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ValidateUsername checks the username format rules
func ValidateUsername(username string) error {
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username is required")
	}
	if len(username) < 7 || len(username) > 20 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be between 7 and 20 characters")
	}
	if strings.Contains(username, " ") {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot contain spaces")
	}
	if username != strings.ToLower(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be lowercase")
	}
	if !usernamePattern.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username can only contain letters and numbers")
	}
	return nil
}

// ValidatePassword checks the password strength rule
func ValidatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password is required")
	}
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	return nil
}

// ValidateAssignableRole checks a role supplied at user creation
func ValidateAssignableRole(role Role) error {
	if !role.IsAssignable() {
		return shared.NewDomainError("INVALID_ROLE", "Invalid role")
	}
	return nil
}

// User represents an account able to authenticate against the system
type User struct {
	shared.BaseEntity
	Username     string `gorm:"type:varchar(20);not null;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"type:varchar(100);not null" json:"-"`
	Role         Role   `gorm:"type:varchar(10);not null;default:'guest'" json:"role"`
	IsAdmin      bool   `gorm:"not null;default:false" json:"isAdmin"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a hashed password
func NewUser(username, password string, role Role) (*User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsAdmin:      role == RoleAdmin,
	}, nil
}

// VerifyPassword reports whether the plaintext matches the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword validates and re-hashes the password
func (u *User) ChangePassword(password string) error {
	password = strings.TrimSpace(password)
	if err := ValidatePassword(password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = string(hash)
	u.Touch()
	return nil
}

// SetRole changes the user's role and keeps the admin flag in sync
func (u *User) SetRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Invalid role")
	}
	u.Role = role
	u.IsAdmin = role == RoleAdmin
	u.Touch()
	return nil
}

// Rename validates and replaces the username
func (u *User) Rename(username string) error {
	username = strings.TrimSpace(username)
	if err := ValidateUsername(username); err != nil {
		return err
	}
	u.Username = username
	u.Touch()
	return nil
}

// Actor identifies the authenticated requester of an operation, as carried
// in the token claims.
type Actor struct {
	ID       string
	Username string
	Role     Role
	IsAdmin  bool
}

// CanModifyInventory reports whether the actor may create or change items,
// suppliers and stock transactions. The single disallowed combination is
// the lowest role tier without the administrative override.
func (a Actor) CanModifyInventory() bool {
	return !(a.Role == RoleGuest && !a.IsAdmin)
}

// IsAdministrator reports whether the actor may manage user accounts
func (a Actor) IsAdministrator() bool {
	return a.Role == RoleAdmin || a.IsAdmin
}
