package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shiftbooks/backoffice/internal/apperrors"
	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/dto"
	"github.com/shiftbooks/backoffice/internal/utils"
)

type userService struct {
	BaseService
	userRepo ports.UserRepository
	activity ports.ActivityRecorder
}

// NewUserService creates the user/employee management service.
func NewUserService(userRepo ports.UserRepository, activity ports.ActivityRecorder) ports.UserSvc {
	return &userService{userRepo: userRepo, activity: activity}
}

var _ ports.UserSvc = (*userService)(nil)

// Provision upserts a first-seen external identity as staff/active and
// returns the local row. Inactive users are blocked here, before any
// handler runs.
func (s *userService) Provision(ctx context.Context, uid, email string) (*domain.User, error) {
	if err := s.userRepo.EnsureUser(ctx, uid, email); err != nil {
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}
	user, err := s.userRepo.FindUserByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to load provisioned user: %w", err)
	}
	if user.Status == domain.UserInactive {
		return nil, fmt.Errorf("account has been disabled: %w", apperrors.ErrForbidden)
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, uid string) (*domain.User, error) {
	return s.userRepo.FindUserByUID(ctx, uid)
}

func (s *userService) ListEmployees(ctx context.Context, admin domain.User) ([]domain.User, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	return s.userRepo.FindUsers(ctx)
}

func (s *userService) GetEmployee(ctx context.Context, admin domain.User, uid string) (*domain.User, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	return s.userRepo.FindUserByUID(ctx, uid)
}

func (s *userService) CreateEmployee(ctx context.Context, admin domain.User, req dto.CreateEmployeeRequest) (*domain.User, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("unknown role %q: %w", req.Role, apperrors.ErrValidation)
	}
	if req.PayRate != nil && req.PayRate.IsNegative() {
		return nil, fmt.Errorf("pay rate must not be negative: %w", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UID:         uuid.NewString(),
		Email:       req.Email,
		Role:        role,
		Status:      domain.UserActive,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		JobRole:     req.JobRole,
		PayRate:     req.PayRate,
	}
	if err := s.userRepo.CreateUser(ctx, user, hash); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, admin, domain.ActionCreateUser,
		fmt.Sprintf("New user: %s, Role: %s", req.Email, req.Role))
	s.LogInfo(ctx, "Employee created", slog.String("employee_uid", user.UID))
	return &user, nil
}

func (s *userService) UpdateEmployee(ctx context.Context, admin domain.User, uid string, req dto.UpdateEmployeeRequest) (*domain.User, error) {
	if err := s.RequireAdmin(admin); err != nil {
		return nil, err
	}
	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("unknown role %q: %w", req.Role, apperrors.ErrValidation)
	}
	if req.PayRate != nil && req.PayRate.IsNegative() {
		return nil, fmt.Errorf("pay rate must not be negative: %w", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	user.FullName = req.FullName
	user.PhoneNumber = req.PhoneNumber
	user.JobRole = req.JobRole
	user.PayRate = req.PayRate
	user.Role = role
	user.Status = domain.UserStatus(req.Status)

	if err := s.userRepo.UpdateEmployee(ctx, *user); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, admin, domain.ActionUpdateEmployee,
		fmt.Sprintf("Updated profile for user UID: %s", uid))
	return user, nil
}

func (s *userService) DisableUser(ctx context.Context, admin domain.User, uid string) error {
	if err := s.RequireAdmin(admin); err != nil {
		return err
	}
	if admin.UID == uid {
		return fmt.Errorf("admins cannot disable their own account: %w", apperrors.ErrValidation)
	}
	if err := s.userRepo.SetUserStatus(ctx, uid, domain.UserInactive); err != nil {
		return err
	}
	s.activity.Record(ctx, admin, domain.ActionDisableUser,
		fmt.Sprintf("Disabled user with UID: %s", uid))
	return nil
}

func (s *userService) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	uid, hash, err := s.userRepo.CredentialHash(ctx, email)
	if err != nil {
		// Do not reveal whether the account exists.
		return nil, fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthorized)
	}
	if !utils.CheckPasswordHash(password, hash) {
		return nil, fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthorized)
	}
	user, err := s.userRepo.FindUserByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to load user after login: %w", err)
	}
	if user.Status == domain.UserInactive {
		return nil, fmt.Errorf("account has been disabled: %w", apperrors.ErrForbidden)
	}
	return user, nil
}
