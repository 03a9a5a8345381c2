package services

import (
	"context"
	"strings"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/maxaizer/talenthub/internal/events"
	"github.com/maxaizer/talenthub/internal/metrics"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const (
	defaultCompany = "My Company"
	defaultField   = "Software Engineering"
)

type PostJobInput struct {
	Title           string                   `json:"title" validate:"required"`
	Description     string                   `json:"description" validate:"required"`
	Requirements    string                   `json:"requirements"`
	Location        string                   `json:"location" validate:"required"`
	Field           string                   `json:"field"`
	ExperienceLevel entities.ExperienceLevel `json:"experienceLevel" validate:"omitempty,oneof=Entry Mid Senior Lead"`
	Deadline        *entities.Date           `json:"deadline"`
	Salary          string                   `json:"salary"`
}

type JobFilter struct {
	Search          string
	Location        string
	Field           string
	ExperienceLevel entities.ExperienceLevel
}

func (f JobFilter) matches(job entities.Job) bool {
	search := strings.ToLower(f.Search)
	if !strings.Contains(strings.ToLower(job.Title), search) && !strings.Contains(strings.ToLower(job.Company), search) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Field != "" && job.Field != f.Field {
		return false
	}
	return f.ExperienceLevel == "" || job.ExperienceLevel == f.ExperienceLevel
}

type JobService struct {
	store *Store
	bus   EventBus.Bus
}

func NewJobService(store *Store, bus EventBus.Bus) *JobService {
	return &JobService{store: store, bus: bus}
}

// Post publishes a job for the current recruiter. The newest job goes first.
func (j *JobService) Post(ctx context.Context, input PostJobInput) (entities.Job, error) {
	if err := validateInput(input); err != nil {
		return entities.Job{}, err
	}

	var job entities.Job
	_, err := j.store.update(ctx, func(snapshot entities.Snapshot) (entities.Snapshot, error) {
		recruiter, err := requireRecruiter(snapshot)
		if err != nil {
			return snapshot, err
		}

		job = entities.Job{
			ID:              entities.NewID(),
			Title:           strings.TrimSpace(input.Title),
			Company:         lo.Ternary(recruiter.CompanyName != "", recruiter.CompanyName, defaultCompany),
			Description:     input.Description,
			Requirements:    entities.ParseRequirements(input.Requirements),
			Location:        strings.TrimSpace(input.Location),
			Field:           lo.Ternary(input.Field != "", input.Field, defaultField),
			ExperienceLevel: lo.Ternary(input.ExperienceLevel != "", input.ExperienceLevel, entities.LevelMid),
			PostedAt:        entities.Today(),
			Deadline:        input.Deadline,
			RecruiterID:     recruiter.ID,
			Salary:          input.Salary,
		}
		snapshot.Jobs = append([]entities.Job{job}, snapshot.Jobs...)
		return snapshot, nil
	})
	if err != nil {
		return entities.Job{}, err
	}

	metrics.JobsPostedCounter.Inc()
	log.Infof("job %v posted by recruiter %v", job.ID, job.RecruiterID)
	j.bus.Publish(events.JobPostedTopic, events.JobPosted{Job: job})
	return job, nil
}

func (j *JobService) List(filter JobFilter) []entities.Job {
	return lo.Filter(j.store.Snapshot().Jobs, func(job entities.Job, _ int) bool {
		return filter.matches(job)
	})
}

func (j *JobService) Get(id string) (entities.Job, error) {
	job, ok := j.store.Snapshot().FindJob(id)
	if !ok {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

// Fields lists the distinct job fields in board order.
func (j *JobService) Fields() []string {
	return lo.Uniq(lo.Map(j.store.Snapshot().Jobs, func(job entities.Job, _ int) string {
		return job.Field
	}))
}
