package campaign

import (
	"context"
	"errors"
	"strings"
	"time"

	common_models "edu-crm/internal/common/models"
	"edu-crm/internal/email"
	"edu-crm/internal/features/audit"
	"edu-crm/internal/features/inquiry"
	"edu-crm/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const sendPageSize = 200

type CampaignService struct {
	repo        CampaignRepo
	inquiryRepo inquiry.InquiryRepository
	emailSender email.Sender
	waSender    WhatsAppSender
	hub         *Hub
	audit       audit.AuditService
	logger      *zap.Logger
}

func NewCampaignService(
	repo CampaignRepo,
	inquiryRepo inquiry.InquiryRepository,
	emailSender email.Sender,
	waSender WhatsAppSender,
	hub *Hub,
	auditService audit.AuditService,
	logger *zap.Logger,
) *CampaignService {
	return &CampaignService{
		repo:        repo,
		inquiryRepo: inquiryRepo,
		emailSender: emailSender,
		waSender:    waSender,
		hub:         hub,
		audit:       auditService,
		logger:      logger,
	}
}

func (s *CampaignService) CreateCampaign(ctx context.Context, claims *utils.UserClaims, c *Campaign) (*Campaign, error) {
	if c.Name == "" {
		return nil, errors.New("campaign name is required")
	}
	if c.Channel != ChannelEmail && c.Channel != ChannelWhatsApp {
		return nil, errors.New("channel must be EMAIL or WHATSAPP")
	}
	if c.Channel == ChannelEmail && c.Subject == "" {
		return nil, errors.New("email campaigns require a subject")
	}
	if c.Body == "" {
		return nil, errors.New("campaign body is required")
	}
	if err := ValidateRule(c.AudienceRule); err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, err
	}
	c.CreatedBy = oid

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}

	_ = s.audit.LogActivity(ctx, claims.UserID, common_models.AuditActionCreate, "campaigns", created.ID.Hex(), nil)
	return created, nil
}

func (s *CampaignService) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	return s.repo.List(ctx)
}

func (s *CampaignService) GetCampaign(ctx context.Context, id string) (*Campaign, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid campaign id")
	}
	return s.repo.GetByID(ctx, oid)
}

func (s *CampaignService) DeleteCampaign(ctx context.Context, claims *utils.UserClaims, id string) error {
	c, err := s.GetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if c.Status == StatusSending {
		return errors.New("cannot delete a campaign while it is sending")
	}
	if err := s.repo.Delete(ctx, c.ID); err != nil {
		return err
	}
	_ = s.audit.LogActivity(ctx, claims.UserID, common_models.AuditActionDelete, "campaigns", id, nil)
	return nil
}

// SendCampaign kicks off delivery in the background and returns once
// the campaign is marked SENDING. Progress is streamed over the hub.
func (s *CampaignService) SendCampaign(ctx context.Context, claims *utils.UserClaims, id string) (*Campaign, error) {
	c, err := s.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status != StatusDraft && c.Status != StatusFailed {
		return nil, errors.New("campaign was already sent")
	}

	if err := s.repo.SetStatus(ctx, c.ID, StatusSending); err != nil {
		return nil, err
	}
	c.Status = StatusSending

	_ = s.audit.LogActivity(ctx, claims.UserID, common_models.AuditActionCampaign, "campaigns", id, nil)

	go s.deliver(c)

	return c, nil
}

func (s *CampaignService) deliver(c *Campaign) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	sent, failed := 0, 0
	var total int64

	page := int64(1)
	for {
		inquiries, count, err := s.inquiryRepo.Find(ctx, bson.M{}, page, sendPageSize)
		if err != nil {
			s.logger.Error("campaign audience fetch failed",
				zap.String("campaign_id", c.ID.Hex()), zap.Error(err))
			s.finish(ctx, c, StatusFailed, sent, failed)
			return
		}
		total = count

		for i := range inquiries {
			inq := &inquiries[i]

			ok, err := EvaluateRule(c.AudienceRule, inq)
			if err != nil {
				s.logger.Warn("audience rule failed for inquiry",
					zap.String("campaign_id", c.ID.Hex()),
					zap.String("inquiry_id", inq.ID.Hex()), zap.Error(err))
				continue
			}
			if !ok {
				continue
			}

			if err := s.sendOne(c, inq); err != nil {
				failed++
				s.logger.Warn("campaign delivery failed",
					zap.String("campaign_id", c.ID.Hex()),
					zap.String("inquiry_id", inq.ID.Hex()), zap.Error(err))
			} else {
				sent++
			}

			s.hub.Broadcast(ProgressEvent{
				CampaignID: c.ID.Hex(),
				Status:     StatusSending,
				Total:      int(total),
				Sent:       sent,
				Failed:     failed,
			})
		}

		if page*sendPageSize >= total {
			break
		}
		page++
	}

	status := StatusSent
	if sent == 0 && failed > 0 {
		status = StatusFailed
	}
	s.finish(ctx, c, status, sent, failed)
}

func (s *CampaignService) finish(ctx context.Context, c *Campaign, status string, sent, failed int) {
	if err := s.repo.FinishSend(ctx, c.ID, status, sent, failed); err != nil {
		s.logger.Error("failed to record campaign result",
			zap.String("campaign_id", c.ID.Hex()), zap.Error(err))
	}

	s.hub.Broadcast(ProgressEvent{
		CampaignID: c.ID.Hex(),
		Status:     status,
		Sent:       sent,
		Failed:     failed,
	})

	s.logger.Info("campaign finished",
		zap.String("campaign_id", c.ID.Hex()),
		zap.String("status", status),
		zap.Int("sent", sent),
		zap.Int("failed", failed))
}

func (s *CampaignService) sendOne(c *Campaign, inq *inquiry.Inquiry) error {
	body := Personalize(c.Body, inq)

	switch c.Channel {
	case ChannelEmail:
		if inq.Email == "" {
			return errors.New("inquiry has no email address")
		}
		return s.emailSender.Send(&email.Email{
			To:       []string{inq.Email},
			Subject:  Personalize(c.Subject, inq),
			HtmlBody: body,
		})
	case ChannelWhatsApp:
		if inq.Phone == "" {
			return errors.New("inquiry has no phone number")
		}
		return s.waSender.Send(inq.Phone, body)
	}
	return errors.New("unknown campaign channel")
}

// Personalize fills {{field}} placeholders from the inquiry.
func Personalize(template string, inq *inquiry.Inquiry) string {
	r := strings.NewReplacer(
		"{{student_name}}", inq.StudentName,
		"{{guardian_name}}", inq.GuardianName,
		"{{phone}}", inq.Phone,
		"{{email}}", inq.Email,
		"{{stage}}", inq.Stage,
		"{{source}}", inq.Source,
	)
	return r.Replace(template)
}
