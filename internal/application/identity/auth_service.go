package identity

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/inventaris/backend/internal/domain/identity"
	"github.com/inventaris/backend/internal/domain/shared"
	"github.com/inventaris/backend/internal/infrastructure/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// SignUp registers a new account. Self-registered accounts always start
// with the user role.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (*UserResponse, error) {
	user, err := identity.NewUser(req.Username, req.Password, identity.RoleUser)
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

	s.logger.Info("User signed up", zap.String("username", user.Username))

	resp := toUserResponse(user)
	return &resp, nil
}

// SignIn verifies credentials and issues an access token
func (s *AuthService) SignIn(ctx context.Context, req SignInRequest) (*SignInResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.VerifyPassword(req.Password) {
		// Same response for unknown username and bad password
		s.logger.Warn("Failed sign-in attempt", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	issued, err := s.jwtService.Generate(auth.TokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		IsAdmin:  user.IsAdmin,
	})
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err))
		return nil, shared.ErrInternal
	}

	s.logger.Info("User signed in",
		zap.String("username", user.Username),
		zap.String("user_id", user.ID.String()))

	return &SignInResponse{
		User:      toUserResponse(user),
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}

// SignOut revokes the presented token for its remaining lifetime
func (s *AuthService) SignOut(ctx context.Context, tokenString string) error {
	claims, err := s.jwtService.Validate(tokenString)
	if err != nil {
		// An invalid or expired token needs no revocation
		return nil
	}

	ttl := claims.RemainingValidity(time.Now())
	if err := s.blacklist.Add(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("Failed to blacklist token", zap.Error(err))
		return shared.ErrInternal
	}

	s.logger.Info("User signed out", zap.String("username", claims.Username))
	return nil
}
