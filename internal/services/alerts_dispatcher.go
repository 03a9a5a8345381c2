package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/maxaizer/talenthub/internal/events"
	"github.com/maxaizer/talenthub/internal/metrics"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type userNotifier interface {
	Notify(user entities.User, text string) error
}

type AlertSchedules struct {
	Daily  string
	Weekly string
}

// AlertDispatcher sends instant alerts when a job is posted and daily and weekly digests on schedule.
type AlertDispatcher struct {
	store    *Store
	bus      EventBus.Bus
	notifier userNotifier
	cron     *cron.Cron
}

func NewAlertDispatcher(store *Store, bus EventBus.Bus, notifier userNotifier,
	schedules AlertSchedules) (*AlertDispatcher, error) {

	d := &AlertDispatcher{
		store:    store,
		bus:      bus,
		notifier: notifier,
		cron:     cron.New(),
	}

	_, err := d.cron.AddFunc(schedules.Daily, func() { d.DispatchDigest(entities.FrequencyDaily, time.Now()) })
	if err != nil {
		return nil, fmt.Errorf("invalid daily schedule: %w", err)
	}
	_, err = d.cron.AddFunc(schedules.Weekly, func() { d.DispatchDigest(entities.FrequencyWeekly, time.Now()) })
	if err != nil {
		return nil, fmt.Errorf("invalid weekly schedule: %w", err)
	}

	if err = bus.SubscribeAsync(events.JobPostedTopic, d.onJobPosted, false); err != nil {
		return nil, err
	}

	d.cron.Start()
	log.Infof("alert dispatcher started, daily: %q, weekly: %q", schedules.Daily, schedules.Weekly)
	return d, nil
}

func (d *AlertDispatcher) Stop() {
	<-d.cron.Stop().Done()
	_ = d.bus.Unsubscribe(events.JobPostedTopic, d.onJobPosted)
}

func (d *AlertDispatcher) onJobPosted(event events.JobPosted) {
	d.dispatch(entities.FrequencyInstant, []entities.Job{event.Job})
}

// DispatchDigest notifies about jobs posted yesterday (daily) or during the seven days before now (weekly).
func (d *AlertDispatcher) DispatchDigest(frequency entities.AlertFrequency, now time.Time) int {
	today := entities.NewDate(now)
	from := today.AddDays(-1)
	if frequency == entities.FrequencyWeekly {
		from = today.AddDays(-7)
	}

	var jobs []entities.Job
	for _, job := range d.store.Snapshot().Jobs {
		if !job.PostedAt.Before(from.Time) && job.PostedAt.Before(today.Time) {
			jobs = append(jobs, job)
		}
	}

	sent := d.dispatch(frequency, jobs)
	log.Infof("%v digest over %d jobs sent %d notifications", frequency, len(jobs), sent)
	return sent
}

func (d *AlertDispatcher) dispatch(frequency entities.AlertFrequency, jobs []entities.Job) int {
	if len(jobs) == 0 {
		return 0
	}

	sent := 0
	for _, user := range d.store.Snapshot().Users {
		if !user.IsCandidate() {
			continue
		}
		for _, alert := range user.JobAlerts {
			if !alert.Active || alert.Frequency != frequency {
				continue
			}
			matched := matchingJobs(alert, jobs)
			if len(matched) == 0 {
				continue
			}
			if d.notifier.Notify(user, alertMessage(alert, matched)) == nil {
				sent++
				metrics.AlertsDispatchedCounter.WithLabelValues(string(frequency)).Inc()
			}
		}
	}
	return sent
}

func matchingJobs(alert entities.JobAlert, jobs []entities.Job) []entities.Job {
	var matched []entities.Job
	for _, job := range jobs {
		if alert.Matches(job) {
			matched = append(matched, job)
		}
	}
	return matched
}

func alertMessage(alert entities.JobAlert, jobs []entities.Job) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("New jobs for \"%s\"", alert.Keywords))
	if alert.Location != "" {
		b.WriteString(" in " + alert.Location)
	}
	b.WriteString(":")
	for _, job := range jobs {
		b.WriteString(fmt.Sprintf("\n- %s at %s (%s)", job.Title, job.Company, job.Location))
	}
	return b.String()
}
