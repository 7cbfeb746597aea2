package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	appauth "github.com/kaanb/courseboard/internal/app/auth"
	"github.com/kaanb/courseboard/internal/app/models"
	"github.com/kaanb/courseboard/internal/app/models/dto"
	"github.com/kaanb/courseboard/internal/app/repositories"
	"github.com/kaanb/courseboard/internal/pkg/apperrors"
	"github.com/kaanb/courseboard/internal/pkg/auth"
)

// UserService defines the interface for account creation and user reads.
type UserService interface {
	CreateUser(ctx context.Context, creatorRole models.RoleType, req *dto.CreateUserRequest) (int64, error)
	GetUser(ctx context.Context, callerID int64, callerRole models.RoleType, id int64) (*dto.UserResponse, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUser creates a new account. Instructor and admin accounts may only be
// created by an admin; student accounts by any authenticated caller. The
// password is hashed before it ever reaches the repository.
func (s *userServiceImpl) CreateUser(ctx context.Context, creatorRole models.RoleType, req *dto.CreateUserRequest) (int64, error) {
	role := models.RoleType(req.Role)
	if !models.ValidRole(role) {
		return 0, apperrors.ErrInvalidRole
	}

	if !appauth.CanCreateUser(creatorRole, role) {
		return 0, apperrors.ErrPermissionDenied
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("userID", id).Str("role", req.Role).Msg("User created")

	return id, nil
}

// GetUser returns the user record. Callers may read themselves; admins may
// read anyone. The response carries the user's course ids resolved by role:
// courses taught for instructors, courses enrolled in for students.
func (s *userServiceImpl) GetUser(ctx context.Context, callerID int64, callerRole models.RoleType, id int64) (*dto.UserResponse, error) {
	if !appauth.CanViewUser(callerID, callerRole, id) {
		return nil, apperrors.ErrPermissionDenied
	}

	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}

	switch user.Role {
	case models.RoleInstructor:
		resp.CourseIDs, err = s.userRepo.GetCourseIDsTaught(ctx, user.ID)
	case models.RoleStudent:
		resp.CourseIDs, err = s.userRepo.GetCourseIDsEnrolled(ctx, user.ID)
	}
	if err != nil {
		return nil, err
	}

	return resp, nil
}
