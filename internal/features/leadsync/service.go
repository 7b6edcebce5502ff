package leadsync

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	common_models "edu-crm/internal/common/models"
	"edu-crm/internal/config"
	"edu-crm/internal/features/audit"
	"edu-crm/internal/features/inquiry"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// SyncResult summarizes one import run.
type SyncResult struct {
	Fetched  int       `json:"fetched"`
	Imported int       `json:"imported"`
	Skipped  int       `json:"skipped"`
	RanAt    time.Time `json:"ran_at"`
}

type externalLead struct {
	Name   string
	Phone  string
	Email  sql.NullString
	Source sql.NullString
}

type LeadSyncService struct {
	cfg         *config.Config
	inquiryRepo inquiry.InquiryRepository
	audit       audit.AuditService
	logger      *zap.Logger
}

func NewLeadSyncService(
	cfg *config.Config,
	inquiryRepo inquiry.InquiryRepository,
	auditService audit.AuditService,
	logger *zap.Logger,
) *LeadSyncService {
	return &LeadSyncService{
		cfg:         cfg,
		inquiryRepo: inquiryRepo,
		audit:       auditService,
		logger:      logger,
	}
}

// Run pulls leads from the external database and imports the ones we
// have not seen before. Dedupe is by phone number.
func (s *LeadSyncService) Run(ctx context.Context, actorID string) (*SyncResult, error) {
	if s.cfg.LeadSyncDSN == "" {
		return nil, errors.New("lead sync source is not configured")
	}

	leads, err := s.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch external leads: %w", err)
	}

	result := &SyncResult{Fetched: len(leads), RanAt: time.Now()}

	for _, lead := range leads {
		if lead.Phone == "" {
			result.Skipped++
			continue
		}

		existing, err := s.inquiryRepo.FindByPhone(ctx, lead.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		inq := &inquiry.Inquiry{
			StudentName: lead.Name,
			Phone:       lead.Phone,
			Email:       lead.Email.String,
			Source:      normalizeSource(lead.Source.String),
			Stage:       inquiry.StageNew,
		}
		if err := s.inquiryRepo.Create(ctx, inq); err != nil {
			s.logger.Warn("failed to import lead",
				zap.String("phone", lead.Phone), zap.Error(err))
			result.Skipped++
			continue
		}
		result.Imported++
	}

	_ = s.audit.LogActivity(ctx, actorID, common_models.AuditActionSync, "inquiries", "", map[string]common_models.Change{
		"imported": {New: result.Imported},
		"skipped":  {New: result.Skipped},
	})

	s.logger.Info("lead sync finished",
		zap.Int("fetched", result.Fetched),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped))

	return result, nil
}

func (s *LeadSyncService) fetch(ctx context.Context) ([]externalLead, error) {
	db, err := sql.Open("postgres", s.cfg.LeadSyncDSN)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, s.cfg.LeadSyncQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []externalLead
	for rows.Next() {
		var lead externalLead
		if err := rows.Scan(&lead.Name, &lead.Phone, &lead.Email, &lead.Source); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// normalizeSource maps free-form source labels from the external system
// onto our source constants. Anything unrecognized becomes OTHER.
func normalizeSource(raw string) string {
	switch raw {
	case inquiry.SourceWalkIn, inquiry.SourcePhoneCall, inquiry.SourceWebsite,
		inquiry.SourceFacebookAds, inquiry.SourceInstagram, inquiry.SourceGoogleAds,
		inquiry.SourceReferral:
		return raw
	case "facebook", "fb":
		return inquiry.SourceFacebookAds
	case "instagram", "ig":
		return inquiry.SourceInstagram
	case "google", "adwords":
		return inquiry.SourceGoogleAds
	case "website", "web":
		return inquiry.SourceWebsite
	case "referral":
		return inquiry.SourceReferral
	default:
		return inquiry.SourceOther
	}
}
