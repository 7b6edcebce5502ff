package interaction

import (
	"context"
	"fmt"

	common_models "edu-crm/internal/common/models"
	"edu-crm/internal/features/audit"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InteractionService interface {
	LogInteraction(ctx context.Context, actorID string, interaction *Interaction) error
	ListByInquiry(ctx context.Context, inquiryID string) ([]Interaction, error)
}

type InteractionServiceImpl struct {
	InteractionRepo InteractionRepository
	AuditService    audit.AuditService
}

func NewInteractionService(interactionRepo InteractionRepository, auditService audit.AuditService) InteractionService {
	return &InteractionServiceImpl{
		InteractionRepo: interactionRepo,
		AuditService:    auditService,
	}
}

func (s *InteractionServiceImpl) LogInteraction(ctx context.Context, actorID string, interaction *Interaction) error {
	if !ValidOutcome(interaction.Outcome) {
		return fmt.Errorf("invalid outcome: %s", interaction.Outcome)
	}

	if interaction.UserID.IsZero() {
		if oid, err := primitive.ObjectIDFromHex(actorID); err == nil {
			interaction.UserID = oid
		}
	}

	if err := s.InteractionRepo.Create(ctx, interaction); err != nil {
		return err
	}

	_ = s.AuditService.LogActivity(ctx, actorID, common_models.AuditActionCreate, "interactions", interaction.ID.Hex(), map[string]common_models.Change{
		"outcome": {New: interaction.Outcome},
		"channel": {New: interaction.Channel},
	})
	return nil
}

func (s *InteractionServiceImpl) ListByInquiry(ctx context.Context, inquiryID string) ([]Interaction, error) {
	return s.InteractionRepo.ListByInquiry(ctx, inquiryID)
}
