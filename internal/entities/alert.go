package entities

import (
	"strings"
)

type AlertFrequency string

const (
	FrequencyDaily   AlertFrequency = "daily"
	FrequencyWeekly  AlertFrequency = "weekly"
	FrequencyInstant AlertFrequency = "instant"
)

type JobAlert struct {
	ID        string         `json:"id"`
	Keywords  string         `json:"keywords"`
	Location  string         `json:"location"`
	Frequency AlertFrequency `json:"frequency"`
	Active    bool           `json:"active"`
}

// Matches reports whether every keyword term occurs in the job and the alert
// location, if any, is part of the job location.
func (a JobAlert) Matches(job Job) bool {
	text := job.SearchableText()
	for _, term := range strings.Fields(strings.ToLower(a.Keywords)) {
		if !strings.Contains(text, term) {
			return false
		}
	}

	location := strings.ToLower(strings.TrimSpace(a.Location))
	return location == "" || strings.Contains(strings.ToLower(job.Location), location)
}
