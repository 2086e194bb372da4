package domain

import "net/http"

type Status string

const (
	StatusSent    Status = "sent"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// DefaultReminder is the sentence placed above the booking link.
const DefaultReminder = "Please ballot, ignore if already have court for that week"

// Result is what a single invocation reports back to its trigger.
type Result struct {
	Status     Status `json:"-"`
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

func Sent() Result {
	return Result{Status: StatusSent, StatusCode: http.StatusOK, Body: "Message sent successfully."}
}

func Skipped() Result {
	return Result{Status: StatusSkipped, StatusCode: http.StatusOK, Body: "Not weekend. No message sent."}
}

func Failed() Result {
	return Result{Status: StatusFailed, StatusCode: http.StatusInternalServerError, Body: "Failed to send message."}
}

// Reminder joins the reminder sentence and the booking link.
func Reminder(text, link string) string {
	if text == "" {
		text = DefaultReminder
	}
	return text + "\n" + link
}
