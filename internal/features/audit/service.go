package audit

import (
	"context"
	"time"

	common_models "edu-crm/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserFinder resolves actor display names without importing the user feature
type UserFinder interface {
	FindNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

type AuditService interface {
	LogActivity(ctx context.Context, actorID string, action common_models.AuditAction, entity string, recordID string, changes map[string]common_models.Change) error
	ListLogs(ctx context.Context, filters map[string]interface{}, page, limit int64) ([]common_models.AuditLog, error)
}

type AuditServiceImpl struct {
	Repo     AuditRepository
	UserRepo UserFinder
}

func NewAuditService(repo AuditRepository, userRepo UserFinder) AuditService {
	return &AuditServiceImpl{
		Repo:     repo,
		UserRepo: userRepo,
	}
}

func (s *AuditServiceImpl) LogActivity(ctx context.Context, actorID string, action common_models.AuditAction, entity string, recordID string, changes map[string]common_models.Change) error {
	if actorID == "" {
		actorID = "system"
	}

	log := common_models.AuditLog{
		ID:        primitive.NewObjectID(),
		Action:    action,
		Entity:    entity,
		RecordID:  recordID,
		ActorID:   actorID,
		Changes:   changes,
		Timestamp: time.Now(),
	}

	return s.Repo.Create(ctx, log)
}

func (s *AuditServiceImpl) ListLogs(ctx context.Context, filters map[string]interface{}, page, limit int64) ([]common_models.AuditLog, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit
	logs, err := s.Repo.List(ctx, filters, limit, offset)
	if err != nil {
		return nil, err
	}

	// Collect unique actor IDs and batch resolve names for display
	actorIDs := make([]string, 0)
	uniqueIDs := make(map[string]bool)
	for _, log := range logs {
		if log.ActorID != "system" && log.ActorID != "" && !uniqueIDs[log.ActorID] {
			uniqueIDs[log.ActorID] = true
			actorIDs = append(actorIDs, log.ActorID)
		}
	}

	if len(actorIDs) > 0 {
		names, err := s.UserRepo.FindNamesByIDs(ctx, actorIDs)
		if err == nil {
			for i := range logs {
				if name, ok := names[logs[i].ActorID]; ok {
					logs[i].ActorName = name
				}
			}
		}
	}

	return logs, nil
}
