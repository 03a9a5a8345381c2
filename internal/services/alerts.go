package services

import (
	"context"
	"slices"
	"strings"

	"github.com/maxaizer/talenthub/internal/entities"
)

type AlertInput struct {
	Keywords  string                  `json:"keywords" validate:"required"`
	Location  string                  `json:"location"`
	Frequency entities.AlertFrequency `json:"frequency" validate:"required,oneof=daily weekly instant"`
}

func (input AlertInput) trimmed() AlertInput {
	input.Keywords = strings.TrimSpace(input.Keywords)
	input.Location = strings.TrimSpace(input.Location)
	return input
}

// AlertService manages the current candidate's job alerts.
type AlertService struct {
	store *Store
}

func NewAlertService(store *Store) *AlertService {
	return &AlertService{store: store}
}

func (a *AlertService) List() ([]entities.JobAlert, error) {
	candidate, err := requireCandidate(a.store.Snapshot())
	if err != nil {
		return nil, err
	}
	return candidate.JobAlerts, nil
}

func (a *AlertService) Create(ctx context.Context, input AlertInput) (entities.JobAlert, error) {
	input = input.trimmed()
	if err := validateInput(input); err != nil {
		return entities.JobAlert{}, err
	}

	alert := entities.JobAlert{
		ID:        entities.NewID(),
		Keywords:  input.Keywords,
		Location:  input.Location,
		Frequency: input.Frequency,
		Active:    true,
	}
	err := a.modify(ctx, func(alerts []entities.JobAlert) ([]entities.JobAlert, error) {
		return append(alerts, alert), nil
	})
	return alert, err
}

func (a *AlertService) Update(ctx context.Context, id string, input AlertInput) (entities.JobAlert, error) {
	input = input.trimmed()
	if err := validateInput(input); err != nil {
		return entities.JobAlert{}, err
	}

	var updated entities.JobAlert
	err := a.modify(ctx, func(alerts []entities.JobAlert) ([]entities.JobAlert, error) {
		idx := indexOfAlert(alerts, id)
		if idx < 0 {
			return nil, ErrAlertNotFound
		}
		alerts[idx].Keywords = input.Keywords
		alerts[idx].Location = input.Location
		alerts[idx].Frequency = input.Frequency
		updated = alerts[idx]
		return alerts, nil
	})
	return updated, err
}

func (a *AlertService) Toggle(ctx context.Context, id string) (entities.JobAlert, error) {
	var updated entities.JobAlert
	err := a.modify(ctx, func(alerts []entities.JobAlert) ([]entities.JobAlert, error) {
		idx := indexOfAlert(alerts, id)
		if idx < 0 {
			return nil, ErrAlertNotFound
		}
		alerts[idx].Active = !alerts[idx].Active
		updated = alerts[idx]
		return alerts, nil
	})
	return updated, err
}

func (a *AlertService) Delete(ctx context.Context, id string) error {
	return a.modify(ctx, func(alerts []entities.JobAlert) ([]entities.JobAlert, error) {
		idx := indexOfAlert(alerts, id)
		if idx < 0 {
			return nil, ErrAlertNotFound
		}
		return slices.Delete(alerts, idx, idx+1), nil
	})
}

// modify hands fn a private copy of the candidate's alerts and stores what it returns.
func (a *AlertService) modify(ctx context.Context, fn func([]entities.JobAlert) ([]entities.JobAlert, error)) error {
	_, err := a.store.update(ctx, func(snapshot entities.Snapshot) (entities.Snapshot, error) {
		candidate, err := requireCandidate(snapshot)
		if err != nil {
			return snapshot, err
		}
		alerts, err := fn(slices.Clone(candidate.JobAlerts))
		if err != nil {
			return snapshot, err
		}
		candidate.JobAlerts = alerts
		return snapshot.WithUser(candidate), nil
	})
	return err
}

func indexOfAlert(alerts []entities.JobAlert, id string) int {
	return slices.IndexFunc(alerts, func(alert entities.JobAlert) bool { return alert.ID == id })
}
