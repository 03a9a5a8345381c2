package entities

import (
	"strings"
)

type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "APPLIED"
	StatusScreening ApplicationStatus = "SCREENING"
	StatusInterview ApplicationStatus = "INTERVIEW"
	StatusOffer     ApplicationStatus = "OFFER"
	StatusRejected  ApplicationStatus = "REJECTED"
)

// Statuses lists every status in pipeline order.
var Statuses = []ApplicationStatus{StatusApplied, StatusScreening, StatusInterview, StatusOffer, StatusRejected}

func (s ApplicationStatus) IsFinal() bool {
	return s == StatusOffer || s == StatusRejected
}

func (s ApplicationStatus) rank() int {
	for i, status := range Statuses {
		if status == s {
			return i
		}
	}
	return -1
}

// CanMoveForwardTo reports whether next follows s in the pipeline. REJECTED is
// reachable from any status that is not final.
func (s ApplicationStatus) CanMoveForwardTo(next ApplicationStatus) bool {
	if s == next {
		return true
	}
	if s.IsFinal() {
		return false
	}
	if next == StatusRejected {
		return true
	}
	return next.rank() > s.rank()
}

type Application struct {
	ID            string            `json:"id"`
	JobID         string            `json:"jobId"`
	CandidateID   string            `json:"candidateId"`
	Status        ApplicationStatus `json:"status"`
	AppliedDate   Date              `json:"appliedDate"`
	AIScore       int               `json:"aiScore"`
	Feedback      string            `json:"feedback"`
	MissingSkills []string          `json:"missingSkills"`
}

func NewApplication(job Job, candidate User, result AssessmentResult, appliedDate Date) Application {
	return Application{
		ID:            NewID(),
		JobID:         job.ID,
		CandidateID:   candidate.ID,
		Status:        StatusApplied,
		AppliedDate:   appliedDate,
		AIScore:       result.Score,
		Feedback:      strings.Join(result.MatchingPoints, ", "),
		MissingSkills: result.MissingSkills,
	}
}
