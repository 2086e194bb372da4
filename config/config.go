package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/tazhate/ballotbot/internal/booking"
	"github.com/tazhate/ballotbot/internal/calendar"
)

const (
	defaultLeadDays    = 14
	defaultAPIEndpoint = "https://api.telegram.org/bot%s/%s"
	defaultHTTPTimeout = 30 * time.Second
)

type Config struct {
	TelegramToken   string
	ChatID          int64
	ChannelUsername string
	ActivityID      string
	VenueID         string

	Timezone    *time.Location
	LeadDays    int
	SlotHours   []int
	BallotDays  calendar.DayGate
	Reminder    string
	BaseURL     string
	APIEndpoint string
	HTTPTimeout time.Duration
}

// LoadEnv loads variables from a .env file in the working directory, if any.
// Variables already set in the environment win.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment variables from .env")
	}
}

func Load() (*Config, error) {
	LoadEnv()

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	chat := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID"))
	if chat == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is required")
	}

	activityID := strings.TrimSpace(os.Getenv("ACTIVITY_ID"))
	if activityID == "" {
		return nil, fmt.Errorf("ACTIVITY_ID is required")
	}

	venueID := strings.TrimSpace(os.Getenv("VENUE_ID"))
	if venueID == "" {
		return nil, fmt.Errorf("VENUE_ID is required")
	}

	cfg := &Config{
		TelegramToken: token,
		ActivityID:    activityID,
		VenueID:       venueID,
		Timezone:      calendar.Singapore,
		LeadDays:      defaultLeadDays,
		SlotHours:     booking.DefaultHours,
		Reminder:      os.Getenv("BALLOT_MESSAGE"),
		BaseURL:       getEnv("ACTIVESG_BASE_URL", booking.DefaultBaseURL),
		APIEndpoint:   getEnv("TELEGRAM_API_ENDPOINT", defaultAPIEndpoint),
		HTTPTimeout:   defaultHTTPTimeout,
	}

	// Numeric ids address users and groups, anything else is a channel username.
	if id, err := strconv.ParseInt(chat, 10, 64); err == nil {
		cfg.ChatID = id
	} else {
		if !strings.HasPrefix(chat, "@") {
			chat = "@" + chat
		}
		cfg.ChannelUsername = chat
	}

	if v := os.Getenv("LEAD_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("LEAD_DAYS must be a non-negative number, got %q", v)
		}
		cfg.LeadDays = n
	}

	if v := os.Getenv("SLOT_HOURS"); v != "" {
		hours, err := parseHours(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SLOT_HOURS: %w", err)
		}
		cfg.SlotHours = hours
	}

	gate, err := calendar.ParseDayGate(os.Getenv("BALLOT_DAYS"), cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid BALLOT_DAYS: %w", err)
	}
	cfg.BallotDays = gate

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = d
	}

	return cfg, nil
}

func parseHours(s string) ([]int, error) {
	var hours []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		h, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parse hour %q: %w", part, err)
		}
		if h < 0 || h > 23 {
			return nil, fmt.Errorf("hour %d out of range", h)
		}
		hours = append(hours, h)
	}
	if len(hours) == 0 {
		return nil, fmt.Errorf("no hours given")
	}
	return hours, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
