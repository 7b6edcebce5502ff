package meeting

import (
	"context"
	"fmt"
	"time"

	common_models "edu-crm/internal/common/models"
	"edu-crm/internal/email"
	"edu-crm/internal/features/audit"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MeetingService interface {
	ScheduleMeeting(ctx context.Context, actorID string, meeting *Meeting) error
	GetMeeting(ctx context.Context, id string) (*Meeting, error)
	ListMeetings(ctx context.Context, organizerID string, upcomingOnly bool) ([]Meeting, error)
	UpdateMeeting(ctx context.Context, actorID string, id string, updates map[string]interface{}) error
	CancelMeeting(ctx context.Context, actorID string, id string) error

	StartReminderScheduler() error
	StopReminderScheduler()
	SendDueReminders(ctx context.Context) (int, error)
}

type MeetingServiceImpl struct {
	MeetingRepo  MeetingRepository
	AuditService audit.AuditService
	Mailer       email.Sender
	Logger       *zap.Logger

	scheduler *cron.Cron
}

func NewMeetingService(meetingRepo MeetingRepository, auditService audit.AuditService, mailer email.Sender, logger *zap.Logger) MeetingService {
	return &MeetingServiceImpl{
		MeetingRepo:  meetingRepo,
		AuditService: auditService,
		Mailer:       mailer,
		Logger:       logger,
	}
}

func (s *MeetingServiceImpl) ScheduleMeeting(ctx context.Context, actorID string, meeting *Meeting) error {
	if meeting.ScheduledAt.IsZero() {
		return fmt.Errorf("scheduled_at is required")
	}
	if meeting.DurationMinutes <= 0 {
		meeting.DurationMinutes = 30
	}
	if meeting.OrganizerID.IsZero() {
		if oid, err := primitive.ObjectIDFromHex(actorID); err == nil {
			meeting.OrganizerID = oid
		}
	}

	if err := s.MeetingRepo.Create(ctx, meeting); err != nil {
		return err
	}

	_ = s.AuditService.LogActivity(ctx, actorID, common_models.AuditActionMeeting, "meetings", meeting.ID.Hex(), map[string]common_models.Change{
		"title":        {New: meeting.Title},
		"scheduled_at": {New: meeting.ScheduledAt},
	})
	return nil
}

func (s *MeetingServiceImpl) GetMeeting(ctx context.Context, id string) (*Meeting, error) {
	return s.MeetingRepo.Get(ctx, id)
}

func (s *MeetingServiceImpl) ListMeetings(ctx context.Context, organizerID string, upcomingOnly bool) ([]Meeting, error) {
	filter := bson.M{}
	if organizerID != "" {
		if oid, err := primitive.ObjectIDFromHex(organizerID); err == nil {
			filter["organizer_id"] = oid
		}
	}
	if upcomingOnly {
		filter["scheduled_at"] = bson.M{"$gte": time.Now()}
		filter["status"] = StatusScheduled
	}
	return s.MeetingRepo.Find(ctx, filter)
}

func (s *MeetingServiceImpl) UpdateMeeting(ctx context.Context, actorID string, id string, updates map[string]interface{}) error {
	old, err := s.MeetingRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	set := bson.M{}
	for k, v := range updates {
		switch k {
		case "title", "location", "duration_minutes", "organizer_email":
			set[k] = v
		case "status":
			status, _ := v.(string)
			if !ValidStatus(status) {
				return fmt.Errorf("invalid status: %v", v)
			}
			set[k] = status
		case "scheduled_at":
			raw, _ := v.(string)
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return fmt.Errorf("invalid scheduled_at: %v", v)
			}
			// Rescheduling re-arms the reminder
			set[k] = t
			set["reminder_sent"] = false
		}
	}
	if len(set) == 0 {
		return fmt.Errorf("no updatable fields provided")
	}

	if err := s.MeetingRepo.Update(ctx, id, set); err != nil {
		return err
	}

	_ = s.AuditService.LogActivity(ctx, actorID, common_models.AuditActionMeeting, "meetings", id, map[string]common_models.Change{
		"meeting": {Old: old, New: set},
	})
	return nil
}

func (s *MeetingServiceImpl) CancelMeeting(ctx context.Context, actorID string, id string) error {
	return s.UpdateMeeting(ctx, actorID, id, map[string]interface{}{"status": StatusCancelled})
}

// StartReminderScheduler runs the reminder sweep every 15 minutes.
func (s *MeetingServiceImpl) StartReminderScheduler() error {
	s.scheduler = cron.New()
	_, err := s.scheduler.AddFunc("*/15 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		sent, err := s.SendDueReminders(ctx)
		if err != nil {
			s.Logger.Error("meeting reminder sweep failed", zap.Error(err))
			return
		}
		if sent > 0 {
			s.Logger.Info("meeting reminders sent", zap.Int("count", sent))
		}
	})
	if err != nil {
		return err
	}
	s.scheduler.Start()
	return nil
}

func (s *MeetingServiceImpl) StopReminderScheduler() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// SendDueReminders emails organizers of meetings starting within the
// next hour. Each meeting gets at most one reminder.
func (s *MeetingServiceImpl) SendDueReminders(ctx context.Context) (int, error) {
	now := time.Now()
	due, err := s.MeetingRepo.FindDueForReminder(ctx, now, now.Add(time.Hour))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, m := range due {
		if m.OrganizerEmail == "" {
			_ = s.MeetingRepo.MarkReminderSent(ctx, m.ID)
			continue
		}

		body := fmt.Sprintf(
			"<p>Reminder: <b>%s</b> starts at %s (%d min)%s.</p>",
			m.Title,
			m.ScheduledAt.Format("Mon, 02 Jan 2006 15:04"),
			m.DurationMinutes,
			locationSuffix(m.Location),
		)
		err := s.Mailer.Send(&email.Email{
			To:       []string{m.OrganizerEmail},
			Subject:  fmt.Sprintf("Upcoming meeting: %s", m.Title),
			HtmlBody: body,
		})
		if err != nil {
			s.Logger.Warn("failed to send meeting reminder", zap.String("meeting_id", m.ID.Hex()), zap.Error(err))
			continue
		}

		if err := s.MeetingRepo.MarkReminderSent(ctx, m.ID); err != nil {
			s.Logger.Warn("failed to mark reminder sent", zap.String("meeting_id", m.ID.Hex()), zap.Error(err))
		}
		sent++
	}
	return sent, nil
}

func locationSuffix(location string) string {
	if location == "" {
		return ""
	}
	return " at " + location
}
