package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/maxaizer/talenthub/internal/events"
	"github.com/maxaizer/talenthub/internal/metrics"
	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

type matcher interface {
	Assess(ctx context.Context, resumeText, jobDescription string) (entities.AssessmentResult, error)
}

type ApplicationOptions struct {
	UniqueApplicationPerJob bool
	ForwardOnlyStatus       bool
	PendingTTL              time.Duration
	RequestTimeout          time.Duration
}

type inFlightAssessment struct {
	cancel context.CancelFunc
}

// ApplicationService runs the assessment dialog and the application lifecycle.
// A dialog is scoped to one (candidate, job) pair and holds at most one running
// assessment and one pending result.
type ApplicationService struct {
	store    *Store
	matcher  matcher
	bus      EventBus.Bus
	options  ApplicationOptions
	pending  *gocache.Cache
	inFlight sync.Map
	// dialogs orders finishing an assessment against dismissing its dialog
	dialogs sync.Mutex
}

func NewApplicationService(store *Store, matcher matcher, bus EventBus.Bus, options ApplicationOptions) *ApplicationService {
	return &ApplicationService{
		store:   store,
		matcher: matcher,
		bus:     bus,
		options: options,
		pending: gocache.New(options.PendingTTL, 2*options.PendingTTL),
	}
}

// Analyze assesses resumeText against the job for the current candidate and keeps
// the result as the dialog's pending assessment. Unavailable and malformed
// assessments still leave the fallback pending.
func (a *ApplicationService) Analyze(ctx context.Context, jobID, resumeText string) (entities.AssessmentResult, error) {

	snapshot := a.store.Snapshot()
	candidate, err := requireCandidate(snapshot)
	if err != nil {
		return entities.AssessmentResult{}, err
	}
	job, ok := snapshot.FindJob(jobID)
	if !ok {
		return entities.AssessmentResult{}, ErrJobNotFound
	}
	if a.options.UniqueApplicationPerJob && snapshot.HasApplied(candidate.ID, job.ID) {
		return entities.AssessmentResult{}, ErrAlreadyApplied
	}

	var callCtx context.Context
	var cancel context.CancelFunc
	if a.options.RequestTimeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, a.options.RequestTimeout)
	} else {
		callCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	key := dialogKey(candidate.ID, job.ID)
	call := &inFlightAssessment{cancel: cancel}
	if _, running := a.inFlight.LoadOrStore(key, call); running {
		return entities.AssessmentResult{}, ErrAssessmentInProgress
	}

	result, err := a.matcher.Assess(callCtx, resumeText, job.Description)

	a.dialogs.Lock()
	defer a.dialogs.Unlock()

	if !a.inFlight.CompareAndDelete(key, call) {
		log.Infof("assessment for job %v dismissed", job.ID)
		return entities.FallbackAssessment(), ErrAssessmentCanceled
	}
	if errors.Is(err, ErrAssessmentCanceled) {
		return result, err
	}

	a.pending.Set(key, result, gocache.DefaultExpiration)
	return result, err
}

// Dismiss closes the dialog: a running assessment is canceled and the pending result dropped.
func (a *ApplicationService) Dismiss(jobID string) error {
	candidate, err := requireCandidate(a.store.Snapshot())
	if err != nil {
		return err
	}

	key := dialogKey(candidate.ID, jobID)
	a.dialogs.Lock()
	defer a.dialogs.Unlock()

	if call, ok := a.inFlight.LoadAndDelete(key); ok {
		call.(*inFlightAssessment).cancel()
	}
	a.pending.Delete(key)
	return nil
}

func (a *ApplicationService) PendingAssessment(jobID string) (entities.AssessmentResult, error) {
	candidate, err := requireCandidate(a.store.Snapshot())
	if err != nil {
		return entities.AssessmentResult{}, err
	}
	cached, found := a.pending.Get(dialogKey(candidate.ID, jobID))
	if !found {
		return entities.AssessmentResult{}, ErrAssessmentRequired
	}
	return cached.(entities.AssessmentResult), nil
}

// Submit turns the pending assessment into an application.
func (a *ApplicationService) Submit(ctx context.Context, jobID string) (entities.Application, error) {

	candidate, err := requireCandidate(a.store.Snapshot())
	if err != nil {
		return entities.Application{}, err
	}

	key := dialogKey(candidate.ID, jobID)
	cached, found := a.pending.Get(key)
	if !found {
		return entities.Application{}, ErrAssessmentRequired
	}
	result := cached.(entities.AssessmentResult)

	var application entities.Application
	var job entities.Job
	_, err = a.store.update(ctx, func(snapshot entities.Snapshot) (entities.Snapshot, error) {
		current, err := requireCandidate(snapshot)
		if err != nil {
			return snapshot, err
		}
		if current.ID != candidate.ID {
			return snapshot, ErrAssessmentRequired
		}

		var ok bool
		if job, ok = snapshot.FindJob(jobID); !ok {
			return snapshot, ErrJobNotFound
		}
		if a.options.UniqueApplicationPerJob && snapshot.HasApplied(current.ID, job.ID) {
			return snapshot, ErrAlreadyApplied
		}

		application = entities.NewApplication(job, current, result, entities.Today())
		snapshot.Applications = append(snapshot.Applications, application)
		return snapshot, nil
	})
	if err != nil {
		return entities.Application{}, err
	}

	a.pending.Delete(key)
	metrics.ApplicationsSubmittedCounter.Inc()
	log.Infof("application %v submitted for job %v, score %d", application.ID, job.ID, application.AIScore)
	a.bus.Publish(events.ApplicationSubmittedTopic, events.ApplicationSubmitted{Application: application, Job: job})
	return application, nil
}

// UpdateStatus moves an application on one of the current recruiter's jobs to status.
func (a *ApplicationService) UpdateStatus(ctx context.Context, applicationID string,
	status entities.ApplicationStatus) (entities.Application, error) {

	if err := validate.Var(string(status), "required,oneof=APPLIED SCREENING INTERVIEW OFFER REJECTED"); err != nil {
		return entities.Application{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	var updated entities.Application
	var job entities.Job
	var previous entities.ApplicationStatus
	_, err := a.store.update(ctx, func(snapshot entities.Snapshot) (entities.Snapshot, error) {
		recruiter, err := requireRecruiter(snapshot)
		if err != nil {
			return snapshot, err
		}

		application, ok := snapshot.FindApplication(applicationID)
		if !ok {
			return snapshot, ErrApplicationNotFound
		}
		job, ok = snapshot.FindJob(application.JobID)
		if !ok || job.RecruiterID != recruiter.ID {
			return snapshot, fmt.Errorf("%w: application %s is not on your jobs", ErrForbidden, applicationID)
		}

		previous = application.Status
		if a.options.ForwardOnlyStatus && !previous.CanMoveForwardTo(status) {
			return snapshot, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, previous, status)
		}

		application.Status = status
		updated = application
		snapshot.Applications = lo.Map(snapshot.Applications, func(item entities.Application, _ int) entities.Application {
			return lo.Ternary(item.ID == applicationID, application, item)
		})
		return snapshot, nil
	})
	if err != nil {
		return entities.Application{}, err
	}

	if previous != status {
		metrics.StatusChangesCounter.WithLabelValues(string(status)).Inc()
		log.Infof("application %v moved %v -> %v", updated.ID, previous, status)
		a.bus.Publish(events.ApplicationStatusChangedTopic,
			events.ApplicationStatusChanged{Application: updated, Job: job, Previous: previous})
	}
	return updated, nil
}

// ListForCandidate returns the current candidate's applications, optionally filtered by status.
func (a *ApplicationService) ListForCandidate(status entities.ApplicationStatus) ([]entities.Application, error) {
	snapshot := a.store.Snapshot()
	candidate, err := requireCandidate(snapshot)
	if err != nil {
		return nil, err
	}
	return lo.Filter(snapshot.Applications, func(item entities.Application, _ int) bool {
		return item.CandidateID == candidate.ID && (status == "" || item.Status == status)
	}), nil
}

type PipelineEntry struct {
	Application entities.Application `json:"application"`
	Job         entities.Job         `json:"job"`
	Candidate   entities.User        `json:"candidate"`
}

// Pipeline returns applications on the current recruiter's jobs.
func (a *ApplicationService) Pipeline() ([]PipelineEntry, error) {
	snapshot := a.store.Snapshot()
	recruiter, err := requireRecruiter(snapshot)
	if err != nil {
		return nil, err
	}

	return lo.FilterMap(snapshot.Applications, func(item entities.Application, _ int) (PipelineEntry, bool) {
		job, ok := snapshot.FindJob(item.JobID)
		if !ok || job.RecruiterID != recruiter.ID {
			return PipelineEntry{}, false
		}
		candidate, _ := snapshot.FindUser(item.CandidateID)
		return PipelineEntry{Application: item, Job: job, Candidate: candidate}, true
	}), nil
}

func dialogKey(candidateID, jobID string) string {
	return candidateID + ":" + jobID
}
