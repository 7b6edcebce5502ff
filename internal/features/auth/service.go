package auth

import (
	"context"
	"errors"

	common_models "edu-crm/internal/common/models"
	"edu-crm/internal/features/audit"
	"edu-crm/internal/features/user"
	"edu-crm/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*user.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthServiceImpl struct {
	UserRepo     user.UserRepository
	AuditService audit.AuditService
}

func NewAuthService(userRepo user.UserRepository, auditService audit.AuditService) AuthService {
	return &AuthServiceImpl{
		UserRepo:     userRepo,
		AuditService: auditService,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (*user.User, error) {
	if existing, _ := s.UserRepo.FindByEmail(ctx, email); existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	newUser := user.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     user.RoleCounselor,
		Active:   true,
	}

	if err := s.UserRepo.Create(ctx, &newUser); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogActivity(ctx, newUser.ID.Hex(), common_models.AuditActionCreate, "users", newUser.ID.Hex(), map[string]common_models.Change{
		"name":  {New: name},
		"email": {New: email},
	})

	return &newUser, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	usr, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	if !usr.Active {
		return "", errors.New("account inactive")
	}

	token, err := utils.GenerateToken(usr.ID, usr.Name, usr.Role)
	if err != nil {
		return "", err
	}

	_ = s.AuditService.LogActivity(ctx, usr.ID.Hex(), common_models.AuditActionLogin, "users", usr.ID.Hex(), nil)

	return token, nil
}
