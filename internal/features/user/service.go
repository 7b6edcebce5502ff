package user

import (
	"context"
	"errors"
	"fmt"

	common_models "edu-crm/internal/common/models"
	"edu-crm/internal/features/audit"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	CreateUser(ctx context.Context, actorID string, user *User, password string) error
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	ListActiveUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, actorID string, id string, updates map[string]interface{}) error
	DeactivateUser(ctx context.Context, actorID string, id string) error
}

type UserServiceImpl struct {
	UserRepo     UserRepository
	AuditService audit.AuditService
}

func NewUserService(userRepo UserRepository, auditService audit.AuditService) UserService {
	return &UserServiceImpl{
		UserRepo:     userRepo,
		AuditService: auditService,
	}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, actorID string, user *User, password string) error {
	if user.Role != RoleAdmin && user.Role != RoleCounselor {
		return fmt.Errorf("invalid role: %s", user.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	user.Active = true

	if err := s.UserRepo.Create(ctx, user); err != nil {
		return err
	}

	_ = s.AuditService.LogActivity(ctx, actorID, common_models.AuditActionCreate, "users", user.ID.Hex(), map[string]common_models.Change{
		"name":  {New: user.Name},
		"email": {New: user.Email},
		"role":  {New: user.Role},
	})
	return nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (*User, error) {
	return s.UserRepo.Get(ctx, id)
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]User, error) {
	return s.UserRepo.List(ctx)
}

func (s *UserServiceImpl) ListActiveUsers(ctx context.Context) ([]User, error) {
	return s.UserRepo.ListActive(ctx)
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, actorID string, id string, updates map[string]interface{}) error {
	if role, ok := updates["role"].(string); ok {
		if role != RoleAdmin && role != RoleCounselor {
			return fmt.Errorf("invalid role: %s", role)
		}
	}
	if _, ok := updates["password"]; ok {
		return errors.New("password cannot be updated through this endpoint")
	}

	old, _ := s.UserRepo.Get(ctx, id)

	set := bson.M{}
	for k, v := range updates {
		switch k {
		case "name", "email", "role", "active":
			set[k] = v
		}
	}
	if len(set) == 0 {
		return errors.New("no updatable fields provided")
	}

	if err := s.UserRepo.Update(ctx, id, set); err != nil {
		return err
	}

	_ = s.AuditService.LogActivity(ctx, actorID, common_models.AuditActionUpdate, "users", id, map[string]common_models.Change{
		"user": {Old: old, New: set},
	})
	return nil
}

func (s *UserServiceImpl) DeactivateUser(ctx context.Context, actorID string, id string) error {
	if err := s.UserRepo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.AuditService.LogActivity(ctx, actorID, common_models.AuditActionDelete, "users", id, map[string]common_models.Change{
		"active": {Old: true, New: false},
	})
	return nil
}
