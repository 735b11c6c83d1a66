package identity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/inventaris/backend/internal/domain/identity"
	"github.com/inventaris/backend/internal/domain/shared"
)

// UserService handles administrative user management. Every operation
// requires an administrator actor.
type UserService struct {
	userRepo identity.UserRepository
	now      func() time.Time
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// SetClock overrides the service clock. Used in tests.
func (s *UserService) SetClock(now func() time.Time) {
	s.now = now
}

// Create registers a user account on behalf of an administrator. Only the
// user and guest roles can be assigned at creation.
func (s *UserService) Create(ctx context.Context, actor identity.Actor, req CreateUserRequest) (*UserResponse, error) {
	if !actor.IsAdministrator() {
		return nil, shared.ErrForbidden
	}

	role := identity.Role(req.Role)
	if err := identity.ValidateAssignableRole(role); err != nil {
		return nil, err
	}

	user, err := identity.NewUser(req.Username, req.Password, role)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// List returns a page of users plus the dashboard totals
func (s *UserService) List(ctx context.Context, actor identity.Actor, req ListUsersRequest) (*ListUsersResponse, error) {
	if !actor.IsAdministrator() {
		return nil, shared.ErrForbidden
	}

	filter := shared.Filter{
		StartIndex: req.StartIndex,
		Limit:      req.Limit,
		OrderDir:   req.Order,
		Search:     req.SearchTerm,
	}.Normalize()

	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	lastMonth, err := s.userRepo.CountCreatedSince(ctx, s.now().AddDate(0, -1, 0))
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}

	return &ListUsersResponse{
		Users:          responses,
		TotalUsers:     total,
		LastMonthUsers: lastMonth,
	}, nil
}

// Update changes a user's username, password, or role. Empty request
// fields are left unchanged.
func (s *UserService) Update(ctx context.Context, actor identity.Actor, userID string, req UpdateUserRequest) (*UserResponse, error) {
	if !actor.IsAdministrator() {
		return nil, shared.ErrForbidden
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_USER", "Invalid user ID")
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, shared.ErrNotFound
	}

	if req.Username != "" && req.Username != user.Username {
		exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
		}
		if err := user.Rename(req.Username); err != nil {
			return nil, err
		}
	}
	if req.Password != "" {
		if err := user.ChangePassword(req.Password); err != nil {
			return nil, err
		}
	}
	if req.Role != "" {
		if err := user.SetRole(identity.Role(req.Role)); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// Delete removes a user account
func (s *UserService) Delete(ctx context.Context, actor identity.Actor, userID string) error {
	if !actor.IsAdministrator() {
		return shared.ErrForbidden
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return shared.NewDomainError("INVALID_USER", "Invalid user ID")
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return shared.ErrNotFound
	}

	return s.userRepo.Delete(ctx, id)
}
