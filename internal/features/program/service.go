package program

import (
	"context"
	"errors"
	"sort"

	common_models "edu-crm/internal/common/models"
	"edu-crm/internal/features/audit"
	"edu-crm/pkg/utils"
)

type ProgramService interface {
	CreateProgram(ctx context.Context, actorID string, program *Program) error
	GetProgram(ctx context.Context, id string) (*Program, error)
	ListPrograms(ctx context.Context, activeOnly bool) ([]Program, error)
	UpdateProgram(ctx context.Context, actorID string, id string, program *Program) error
	DeleteProgram(ctx context.Context, actorID string, id string) error
}

type ProgramServiceImpl struct {
	ProgramRepo  ProgramRepository
	AuditService audit.AuditService
}

func NewProgramService(programRepo ProgramRepository, auditService audit.AuditService) ProgramService {
	return &ProgramServiceImpl{
		ProgramRepo:  programRepo,
		AuditService: auditService,
	}
}

func (s *ProgramServiceImpl) CreateProgram(ctx context.Context, actorID string, program *Program) error {
	if program.Name == "" {
		return errors.New("program name is required")
	}

	program.Slug = utils.Slugify(program.Name)
	if existing, _ := s.ProgramRepo.FindBySlug(ctx, program.Slug); existing != nil {
		return errors.New("a program with this name already exists")
	}

	sortLevels(program.Levels)

	if err := s.ProgramRepo.Create(ctx, program); err != nil {
		return err
	}

	_ = s.AuditService.LogActivity(ctx, actorID, common_models.AuditActionCreate, "programs", program.ID.Hex(), map[string]common_models.Change{
		"name": {New: program.Name},
	})
	return nil
}

func (s *ProgramServiceImpl) GetProgram(ctx context.Context, id string) (*Program, error) {
	return s.ProgramRepo.Get(ctx, id)
}

func (s *ProgramServiceImpl) ListPrograms(ctx context.Context, activeOnly bool) ([]Program, error) {
	return s.ProgramRepo.List(ctx, activeOnly)
}

func (s *ProgramServiceImpl) UpdateProgram(ctx context.Context, actorID string, id string, program *Program) error {
	old, err := s.ProgramRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if program.Name != "" && program.Name != old.Name {
		program.Slug = utils.Slugify(program.Name)
	} else {
		program.Name = old.Name
		program.Slug = old.Slug
	}

	sortLevels(program.Levels)

	if err := s.ProgramRepo.Update(ctx, id, program); err != nil {
		return err
	}

	_ = s.AuditService.LogActivity(ctx, actorID, common_models.AuditActionUpdate, "programs", id, map[string]common_models.Change{
		"program": {Old: old, New: program},
	})
	return nil
}

func (s *ProgramServiceImpl) DeleteProgram(ctx context.Context, actorID string, id string) error {
	old, _ := s.ProgramRepo.Get(ctx, id)
	if err := s.ProgramRepo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.AuditService.LogActivity(ctx, actorID, common_models.AuditActionDelete, "programs", id, map[string]common_models.Change{
		"program": {Old: old, New: "DELETED"},
	})
	return nil
}

func sortLevels(levels []Level) {
	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].Order < levels[j].Order
	})
}
