package report

import (
	"context"
	"fmt"
	"time"

	common_models "edu-crm/internal/common/models"
	"edu-crm/internal/config"
	"edu-crm/internal/features/audit"
	"edu-crm/internal/features/inquiry"
	"edu-crm/internal/features/interaction"
	"edu-crm/internal/features/user"
	"edu-crm/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportService struct {
	InquiryRepo     inquiry.InquiryRepository
	InteractionRepo interaction.InteractionRepository
	UserRepo        user.UserRepository
	AuditService    audit.AuditService
	Config          *config.Config
}

func NewReportService(
	inquiryRepo inquiry.InquiryRepository,
	interactionRepo interaction.InteractionRepository,
	userRepo user.UserRepository,
	auditService audit.AuditService,
	cfg *config.Config,
) *ReportService {
	return &ReportService{
		InquiryRepo:     inquiryRepo,
		InteractionRepo: interactionRepo,
		UserRepo:        userRepo,
		AuditService:    auditService,
		Config:          cfg,
	}
}

// reportScope carries the ownership predicates for both record kinds,
// computed once per request and threaded into every aggregate call.
type reportScope struct {
	inquiries    bson.M
	interactions bson.M
	allUsers     bool
}

func buildScope(claims *utils.UserClaims) reportScope {
	if claims.IsAdmin() {
		return reportScope{inquiries: bson.M{}, interactions: bson.M{}, allUsers: true}
	}

	scope := reportScope{
		inquiries:    bson.M{"owner_id": claims.UserID},
		interactions: bson.M{"user_id": claims.UserID},
	}
	if oid, err := primitive.ObjectIDFromHex(claims.UserID); err == nil {
		scope.inquiries = bson.M{"owner_id": oid}
		scope.interactions = bson.M{"user_id": oid}
	}
	return scope
}

// BuildSnapshot assembles the full analytics snapshot for the caller's
// scope. Any failing read aborts the whole snapshot.
func (s *ReportService) BuildSnapshot(ctx context.Context, claims *utils.UserClaims) (*Snapshot, error) {
	scope := buildScope(claims)
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	snap := &Snapshot{
		GeneratedAt: now,
		GeneratedBy: claims.Name,
	}

	// Authoritative total via direct count, never a group sum.
	total, err := s.InquiryRepo.CountWithFilter(ctx, scope.inquiries)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}
	snap.TotalInquiries = total

	converted, err := s.InquiryRepo.CountWithFilter(ctx, withStageIn(scope.inquiries, inquiry.ConvertedStages))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}
	snap.ConvertedCount = converted
	snap.ConversionRate = percentOf(converted, total)

	lost, err := s.InquiryRepo.CountWithFilter(ctx, withStage(scope.inquiries, inquiry.StageLost))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}
	snap.LostCount = lost

	ready, err := s.InquiryRepo.CountWithFilter(ctx, withStage(scope.inquiries, inquiry.StageReadyToRegister))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}
	snap.ReadyCount = ready

	newThisMonth, err := s.InquiryRepo.CountWithFilter(ctx, withCreatedSince(scope.inquiries, monthStart))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}
	snap.NewThisMonth = newThisMonth

	sourceGroups, err := s.InquiryRepo.GroupByField(ctx, "source", scope.inquiries)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}
	convertedBySource, err := s.InquiryRepo.ConvertedCountByField(ctx, "source", scope.inquiries)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}
	snap.SourcePerformance = buildSourcePerformance(sourceGroups, convertedBySource)

	stageGroups, err := s.InquiryRepo.GroupByField(ctx, "stage", scope.inquiries)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}
	snap.StageDistribution = buildStageDistribution(stageGroups)

	trendRecords, err := s.InquiryRepo.FindCreatedSince(ctx, trendWindowStart(now), scope.inquiries)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}
	snap.MonthlyTrends = buildMonthlyTrends(trendRecords, now)

	totalInteractions, err := s.InteractionRepo.CountWithFilter(ctx, scope.interactions)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}
	outcomes, err := s.InteractionRepo.GroupByOutcome(ctx, scope.interactions)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}
	snap.ContactMetrics = buildContactMetrics(totalInteractions, outcomes)
	snap.OutcomeBreakdown = buildOutcomeBreakdown(outcomes)

	rollup, err := s.buildRollup(ctx, claims, scope, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}
	snap.UserPerformance = rollup

	if s.Config.DebugReports {
		sum := stageSum(snap.StageDistribution)
		snap.Debug = &DebugInfo{
			StageSum:   sum,
			Total:      total,
			Consistent: sum == total,
		}
	}

	_ = s.AuditService.LogActivity(ctx, claims.UserID, common_models.AuditActionReport, "reports", "", nil)

	return snap, nil
}

// RecordExport leaves an audit trail entry for document downloads.
func (s *ReportService) RecordExport(ctx context.Context, claims *utils.UserClaims, format string) {
	_ = s.AuditService.LogActivity(ctx, claims.UserID, common_models.AuditActionExport, "reports", "", map[string]common_models.Change{
		"format": {New: format},
	})
}

// buildRollup joins the four owner-grouped aggregates (each computed
// once for the full owner universe) onto the roster.
func (s *ReportService) buildRollup(ctx context.Context, claims *utils.UserClaims, scope reportScope, monthStart time.Time) ([]UserPerformance, error) {
	var roster []user.User
	if scope.allUsers {
		users, err := s.UserRepo.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		roster = users
	} else {
		u, err := s.UserRepo.Get(ctx, claims.UserID)
		if err != nil {
			return nil, err
		}
		roster = []user.User{*u}
	}

	inquiriesByOwner, err := s.InquiryRepo.GroupByField(ctx, "owner_id", bson.M{})
	if err != nil {
		return nil, err
	}
	convertedByOwner, err := s.InquiryRepo.ConvertedCountByField(ctx, "owner_id", bson.M{})
	if err != nil {
		return nil, err
	}
	interactionsByOwner, err := s.InteractionRepo.CountByOwner(ctx)
	if err != nil {
		return nil, err
	}
	monthByOwner, err := s.InquiryRepo.GroupByField(ctx, "owner_id", bson.M{"created_at": bson.M{"$gte": monthStart}})
	if err != nil {
		return nil, err
	}

	agg := ownerAggregates{
		Inquiries:    groupsToMap(inquiriesByOwner),
		Converted:    convertedByOwner,
		Interactions: interactionsByOwner,
		ThisMonth:    groupsToMap(monthByOwner),
	}
	return buildUserPerformance(roster, agg), nil
}

func groupsToMap(groups []inquiry.GroupCount) map[string]int64 {
	counts := make(map[string]int64, len(groups))
	for _, g := range groups {
		counts[g.Key] = g.Count
	}
	return counts
}

func withStage(scope bson.M, stage string) bson.M {
	return mergeFilter(scope, bson.M{"stage": stage})
}

func withStageIn(scope bson.M, stages []string) bson.M {
	return mergeFilter(scope, bson.M{"stage": bson.M{"$in": stages}})
}

func withCreatedSince(scope bson.M, since time.Time) bson.M {
	return mergeFilter(scope, bson.M{"created_at": bson.M{"$gte": since}})
}

func mergeFilter(scope bson.M, extra bson.M) bson.M {
	merged := make(bson.M, len(scope)+len(extra))
	for k, v := range scope {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
