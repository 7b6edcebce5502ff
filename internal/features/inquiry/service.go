package inquiry

import (
	"context"
	"fmt"

	common_models "edu-crm/internal/common/models"
	"edu-crm/internal/features/audit"
	"edu-crm/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InquiryService interface {
	CreateInquiry(ctx context.Context, claims *utils.UserClaims, inquiry *Inquiry) error
	GetInquiry(ctx context.Context, claims *utils.UserClaims, id string) (*Inquiry, error)
	ListInquiries(ctx context.Context, claims *utils.UserClaims, filters map[string]string, page, limit int64) ([]Inquiry, int64, error)
	UpdateInquiry(ctx context.Context, claims *utils.UserClaims, id string, updates map[string]interface{}) error
	MoveStage(ctx context.Context, claims *utils.UserClaims, id string, stage string) (*Inquiry, error)
	DeleteInquiry(ctx context.Context, claims *utils.UserClaims, id string) error
	Board(ctx context.Context, claims *utils.UserClaims) (map[string][]Inquiry, error)
}

type InquiryServiceImpl struct {
	InquiryRepo  InquiryRepository
	AuditService audit.AuditService
}

func NewInquiryService(inquiryRepo InquiryRepository, auditService audit.AuditService) InquiryService {
	return &InquiryServiceImpl{
		InquiryRepo:  inquiryRepo,
		AuditService: auditService,
	}
}

// scopeFilter builds the ownership predicate once: admins see every
// inquiry, counselors only their own.
func scopeFilter(claims *utils.UserClaims) bson.M {
	if claims.IsAdmin() {
		return bson.M{}
	}
	if oid, err := primitive.ObjectIDFromHex(claims.UserID); err == nil {
		return bson.M{"owner_id": oid}
	}
	return bson.M{"owner_id": claims.UserID}
}

func (s *InquiryServiceImpl) CreateInquiry(ctx context.Context, claims *utils.UserClaims, inquiry *Inquiry) error {
	if inquiry.Stage != "" && !ValidStage(inquiry.Stage) {
		return fmt.Errorf("invalid stage: %s", inquiry.Stage)
	}

	if inquiry.OwnerID.IsZero() {
		if oid, err := primitive.ObjectIDFromHex(claims.UserID); err == nil {
			inquiry.OwnerID = oid
		}
	}

	if err := s.InquiryRepo.Create(ctx, inquiry); err != nil {
		return err
	}

	_ = s.AuditService.LogActivity(ctx, claims.UserID, common_models.AuditActionCreate, "inquiries", inquiry.ID.Hex(), map[string]common_models.Change{
		"student_name": {New: inquiry.StudentName},
		"source":       {New: inquiry.Source},
		"stage":        {New: inquiry.Stage},
	})
	return nil
}

func (s *InquiryServiceImpl) GetInquiry(ctx context.Context, claims *utils.UserClaims, id string) (*Inquiry, error) {
	inquiry, err := s.InquiryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !claims.IsAdmin() && inquiry.OwnerID.Hex() != claims.UserID {
		return nil, fmt.Errorf("inquiry not found")
	}
	return inquiry, nil
}

func (s *InquiryServiceImpl) ListInquiries(ctx context.Context, claims *utils.UserClaims, filters map[string]string, page, limit int64) ([]Inquiry, int64, error) {
	query := scopeFilter(claims)

	if stage := filters["stage"]; stage != "" {
		query["stage"] = stage
	}
	if source := filters["source"]; source != "" {
		query["source"] = source
	}
	if search := filters["search"]; search != "" {
		query["$or"] = []bson.M{
			{"student_name": bson.M{"$regex": search, "$options": "i"}},
			{"phone": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	return s.InquiryRepo.Find(ctx, query, page, limit)
}

func (s *InquiryServiceImpl) UpdateInquiry(ctx context.Context, claims *utils.UserClaims, id string, updates map[string]interface{}) error {
	old, err := s.GetInquiry(ctx, claims, id)
	if err != nil {
		return err
	}

	set := bson.M{}
	for k, v := range updates {
		switch k {
		case "student_name", "guardian_name", "phone", "email", "source", "notes":
			set[k] = v
		case "stage":
			stage, _ := v.(string)
			if !ValidStage(stage) {
				return fmt.Errorf("invalid stage: %v", v)
			}
			set[k] = stage
		case "program_id", "owner_id":
			raw, _ := v.(string)
			oid, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				return fmt.Errorf("invalid %s: %v", k, v)
			}
			set[k] = oid
		}
	}
	if len(set) == 0 {
		return fmt.Errorf("no updatable fields provided")
	}

	if err := s.InquiryRepo.Update(ctx, id, set); err != nil {
		return err
	}

	_ = s.AuditService.LogActivity(ctx, claims.UserID, common_models.AuditActionUpdate, "inquiries", id, map[string]common_models.Change{
		"inquiry": {Old: old, New: set},
	})
	return nil
}

// MoveStage is the follow-up board drop target: it reassigns a single
// inquiry to a new pipeline stage.
func (s *InquiryServiceImpl) MoveStage(ctx context.Context, claims *utils.UserClaims, id string, stage string) (*Inquiry, error) {
	if !ValidStage(stage) {
		return nil, fmt.Errorf("invalid stage: %s", stage)
	}

	old, err := s.GetInquiry(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	if old.Stage == stage {
		return old, nil
	}

	if err := s.InquiryRepo.UpdateStage(ctx, id, stage); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogActivity(ctx, claims.UserID, common_models.AuditActionStage, "inquiries", id, map[string]common_models.Change{
		"stage": {Old: old.Stage, New: stage},
	})

	old.Stage = stage
	return old, nil
}

func (s *InquiryServiceImpl) DeleteInquiry(ctx context.Context, claims *utils.UserClaims, id string) error {
	old, err := s.GetInquiry(ctx, claims, id)
	if err != nil {
		return err
	}

	if err := s.InquiryRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.AuditService.LogActivity(ctx, claims.UserID, common_models.AuditActionDelete, "inquiries", id, map[string]common_models.Change{
		"inquiry": {Old: old, New: "DELETED"},
	})
	return nil
}

// Board returns inquiries grouped by stage for the Kanban view. Every
// stage is present in the result, empty stages as empty slices.
func (s *InquiryServiceImpl) Board(ctx context.Context, claims *utils.UserClaims) (map[string][]Inquiry, error) {
	inquiries, _, err := s.InquiryRepo.Find(ctx, scopeFilter(claims), 1, 1000)
	if err != nil {
		return nil, err
	}

	board := make(map[string][]Inquiry, len(Stages))
	for _, stage := range Stages {
		board[stage] = []Inquiry{}
	}
	for _, inq := range inquiries {
		board[inq.Stage] = append(board[inq.Stage], inq)
	}
	return board, nil
}
