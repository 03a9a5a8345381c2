package services

import (
	"math"

	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/samber/lo"
)

type StatusCount struct {
	Status entities.ApplicationStatus `json:"status"`
	Count  int                        `json:"count"`
}

type CandidateStats struct {
	Total        int           `json:"total"`
	Offers       int           `json:"offers"`
	Interviews   int           `json:"interviews"`
	AverageScore int           `json:"averageScore"`
	ByStatus     []StatusCount `json:"byStatus"`
}

type JobApplications struct {
	JobID        string `json:"jobId"`
	Title        string `json:"title"`
	Applications int    `json:"applications"`
}

type RecruiterStats struct {
	ByStatus []StatusCount     `json:"byStatus"`
	ByJob    []JobApplications `json:"byJob"`
}

type AnalyticsService struct {
	store *Store
}

func NewAnalyticsService(store *Store) *AnalyticsService {
	return &AnalyticsService{store: store}
}

func (a *AnalyticsService) CandidateStats() (CandidateStats, error) {
	snapshot := a.store.Snapshot()
	candidate, err := requireCandidate(snapshot)
	if err != nil {
		return CandidateStats{}, err
	}

	applications := lo.Filter(snapshot.Applications, func(item entities.Application, _ int) bool {
		return item.CandidateID == candidate.ID
	})
	return candidateStats(applications), nil
}

func (a *AnalyticsService) RecruiterStats() (RecruiterStats, error) {
	snapshot := a.store.Snapshot()
	recruiter, err := requireRecruiter(snapshot)
	if err != nil {
		return RecruiterStats{}, err
	}

	jobs := lo.Filter(snapshot.Jobs, func(job entities.Job, _ int) bool {
		return job.RecruiterID == recruiter.ID
	})
	return recruiterStats(jobs, snapshot.Applications), nil
}

func candidateStats(applications []entities.Application) CandidateStats {
	stats := CandidateStats{
		Total:      len(applications),
		Offers:     lo.CountBy(applications, hasStatus(entities.StatusOffer)),
		Interviews: lo.CountBy(applications, hasStatus(entities.StatusInterview)),
		ByStatus:   countByStatus(applications),
	}
	if stats.Total > 0 {
		total := lo.SumBy(applications, func(item entities.Application) int { return item.AIScore })
		stats.AverageScore = int(math.Round(float64(total) / float64(stats.Total)))
	}
	return stats
}

func recruiterStats(jobs []entities.Job, applications []entities.Application) RecruiterStats {
	jobIDs := lo.SliceToMap(jobs, func(job entities.Job) (string, struct{}) { return job.ID, struct{}{} })
	own := lo.Filter(applications, func(item entities.Application, _ int) bool {
		_, ok := jobIDs[item.JobID]
		return ok
	})
	perJob := lo.CountValuesBy(own, func(item entities.Application) string { return item.JobID })

	return RecruiterStats{
		ByStatus: countByStatus(own),
		ByJob: lo.Map(jobs, func(job entities.Job, _ int) JobApplications {
			return JobApplications{JobID: job.ID, Title: job.Title, Applications: perJob[job.ID]}
		}),
	}
}

func countByStatus(applications []entities.Application) []StatusCount {
	return lo.Map(entities.Statuses, func(status entities.ApplicationStatus, _ int) StatusCount {
		return StatusCount{Status: status, Count: lo.CountBy(applications, hasStatus(status))}
	})
}

func hasStatus(status entities.ApplicationStatus) func(entities.Application) bool {
	return func(item entities.Application) bool { return item.Status == status }
}
