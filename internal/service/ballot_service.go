package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/tazhate/ballotbot/config"
	"github.com/tazhate/ballotbot/internal/booking"
	"github.com/tazhate/ballotbot/internal/calendar"
	"github.com/tazhate/ballotbot/internal/domain"
)

type MessageSender interface {
	SendMessage(text string) error
}

// BallotService sends the weekend ballot reminder.
type BallotService struct {
	cfg     *config.Config
	builder booking.Builder
	sender  MessageSender
}

func NewBallotService(cfg *config.Config, sender MessageSender) *BallotService {
	return &BallotService{
		cfg: cfg,
		builder: booking.Builder{
			BaseURL:    cfg.BaseURL,
			ActivityID: cfg.ActivityID,
			VenueID:    cfg.VenueID,
			Location:   cfg.Timezone,
			Hours:      cfg.SlotHours,
		},
		sender: sender,
	}
}

// Link returns the booking link for the ballot opening at now.
func (s *BallotService) Link(now time.Time) string {
	target := calendar.TargetDate(now, s.cfg.Timezone, s.cfg.LeadDays)
	return s.builder.URL(target)
}

// Run sends the reminder when now falls on a ballot day. A failed send is
// logged and reported in the result, never returned as an error.
func (s *BallotService) Run(now time.Time) domain.Result {
	runID := uuid.NewString()
	local := now.In(s.cfg.Timezone)

	if !s.cfg.BallotDays.Allows(now) {
		log.Printf("[%s] %s is not a ballot day (%s), skipping", runID, local.Format("Mon 2006-01-02"), s.cfg.BallotDays)
		return domain.Skipped()
	}

	link := s.Link(now)
	text := domain.Reminder(s.cfg.Reminder, link)

	if err := s.sender.SendMessage(text); err != nil {
		log.Printf("[%s] Error sending ballot reminder: %v", runID, err)
		return domain.Failed()
	}

	log.Printf("[%s] Ballot reminder sent: %s", runID, link)
	return domain.Sent()
}
