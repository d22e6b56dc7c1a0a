package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/li-cell/election-backend-go/internal/domain/role"
	"github.com/li-cell/election-backend-go/internal/domain/user"
	"github.com/li-cell/election-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AdminService interface {
	// Role operations
	CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.Role, error)
	GetRole(ctx context.Context, id string) (role.Role, error)
	ListRoles(ctx context.Context) ([]role.Role, error)
	UpdateRole(ctx context.Context, req role.UpdateRoleRequest) error
	DeleteRole(ctx context.Context, id string) error

	// User operations
	CreateUser(ctx context.Context, req user.CreateUserRequest) (user.AppUser, error)
	GetUser(ctx context.Context, id string) (user.AppUser, error)
	ListUsers(ctx context.Context) ([]user.AppUser, error)
	UpdateUser(ctx context.Context, req user.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id string) error

	// Login verifies credentials and issues an access token whose admin
	// claim reflects the user's role permissions.
	Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error)
}

type adminServiceImpl struct {
	roleRepo   role.RoleRepository
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAdminService(
	roleRepo role.RoleRepository,
	userRepo user.UserRepository,
	jwtService jwt.Service,
) AdminService {
	return &adminServiceImpl{
		roleRepo:   roleRepo,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// ==================== ROLE OPERATIONS ====================

func (s *adminServiceImpl) CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.Role, error) {
	if err := req.Validate(); err != nil {
		return role.Role{}, err
	}

	existing, err := s.roleRepo.List(ctx)
	if err != nil {
		return role.Role{}, fmt.Errorf("failed to check role names: %w", err)
	}
	for _, r := range existing {
		if r.Name == req.Name {
			return role.Role{}, role.ErrRoleNameExists
		}
	}

	entity := role.Role{
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	}
	created, err := s.roleRepo.Create(ctx, entity)
	if err != nil {
		return role.Role{}, fmt.Errorf("failed to create role: %w", err)
	}
	return created, nil
}

func (s *adminServiceImpl) GetRole(ctx context.Context, id string) (role.Role, error) {
	return s.roleRepo.GetByID(ctx, id)
}

func (s *adminServiceImpl) ListRoles(ctx context.Context) ([]role.Role, error) {
	return s.roleRepo.List(ctx)
}

func (s *adminServiceImpl) UpdateRole(ctx context.Context, req role.UpdateRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Permissions != nil {
		fields["permissions"] = *req.Permissions
	}
	if len(fields) == 0 {
		return nil
	}
	return s.roleRepo.Update(ctx, req.ID, fields)
}

func (s *adminServiceImpl) DeleteRole(ctx context.Context, id string) error {
	return s.roleRepo.Delete(ctx, id)
}

// ==================== USER OPERATIONS ====================

func (s *adminServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.AppUser, error) {
	if err := req.Validate(); err != nil {
		return user.AppUser{}, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return user.AppUser{}, user.ErrUserEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.AppUser{}, fmt.Errorf("failed to check email: %w", err)
	}

	if req.RoleID != "" {
		if _, err := s.roleRepo.GetByID(ctx, req.RoleID); err != nil {
			return user.AppUser{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.AppUser{}, fmt.Errorf("failed to hash password: %w", err)
	}

	entity := user.AppUser{
		DisplayName:  req.DisplayName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		RoleID:       req.RoleID,
	}
	created, err := s.userRepo.Create(ctx, entity)
	if err != nil {
		return user.AppUser{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

func (s *adminServiceImpl) GetUser(ctx context.Context, id string) (user.AppUser, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *adminServiceImpl) ListUsers(ctx context.Context) ([]user.AppUser, error) {
	return s.userRepo.List(ctx)
}

func (s *adminServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	fields := map[string]any{}
	if req.DisplayName != nil {
		fields["displayName"] = *req.DisplayName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.RoleID != nil {
		if *req.RoleID != "" {
			if _, err := s.roleRepo.GetByID(ctx, *req.RoleID); err != nil {
				return err
			}
		}
		fields["roleId"] = *req.RoleID
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		fields["password"] = string(hash)
	}
	if len(fields) == 0 {
		return nil
	}
	return s.userRepo.Update(ctx, req.ID, fields)
}

func (s *adminServiceImpl) DeleteUser(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}

// ==================== LOGIN ====================

func (s *adminServiceImpl) Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return user.LoginResponse{}, err
	}

	account, err := s.userRepo.GetByEmail(ctx, req.Email)
	if errors.Is(err, user.ErrUserNotFound) {
		return user.LoginResponse{}, user.ErrInvalidCredentials
	}
	if err != nil {
		return user.LoginResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return user.LoginResponse{}, user.ErrInvalidCredentials
	}

	isAdmin := false
	if account.RoleID != "" {
		r, err := s.roleRepo.GetByID(ctx, account.RoleID)
		if err != nil && !errors.Is(err, role.ErrRoleNotFound) {
			return user.LoginResponse{}, fmt.Errorf("failed to look up role: %w", err)
		}
		if err == nil {
			isAdmin = r.HasPermission(role.PermissionAdmin)
		}
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(account.ID, account.Email, isAdmin)
	if err != nil {
		return user.LoginResponse{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return user.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        account,
		IsAdmin:     isAdmin,
	}, nil
}
