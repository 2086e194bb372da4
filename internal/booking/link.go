package booking

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://activesg.gov.sg"
	dateLayout     = "2006-01-02"
)

// DefaultHours are the slot start hours linked in every reminder.
var DefaultHours = []int{15, 16}

// Timeslot is a bookable hour identified by its start.
type Timeslot struct {
	Start time.Time
}

// Millis is the slot start in milliseconds since the Unix epoch.
func (t Timeslot) Millis() int64 {
	return t.Start.UnixMilli()
}

// Builder renders ActiveSG timeslot deep links for one activity at one venue.
type Builder struct {
	BaseURL    string
	ActivityID string
	VenueID    string
	Location   *time.Location
	Hours      []int
}

// Slots returns one timeslot per configured hour on date's civil day.
func (b Builder) Slots(date time.Time) []Timeslot {
	y, m, d := date.In(b.Location).Date()
	hours := b.Hours
	if len(hours) == 0 {
		hours = DefaultHours
	}

	slots := make([]Timeslot, 0, len(hours))
	for _, h := range hours {
		slots = append(slots, Timeslot{Start: time.Date(y, m, d, h, 0, 0, 0, b.Location)})
	}
	return slots
}

// URL builds the timeslots page link preselecting every slot on date.
func (b Builder) URL(date time.Time) string {
	base := b.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimRight(base, "/"))
	sb.WriteString(fmt.Sprintf("/facility-bookings/activities/%s/venues/%s/timeslots",
		url.PathEscape(b.ActivityID), url.PathEscape(b.VenueID)))

	sb.WriteString("?date=")
	sb.WriteString(date.In(b.Location).Format(dateLayout))
	for _, s := range b.Slots(date) {
		sb.WriteString("&timeslots=")
		sb.WriteString(strconv.FormatInt(s.Millis(), 10))
	}
	return sb.String()
}
