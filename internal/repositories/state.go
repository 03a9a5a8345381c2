package repositories

import (
	"context"
	"encoding/json"

	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/pkg/errors"
)

const (
	usersKey        = "allUsers"
	currentUserKey  = "currentUser"
	jobsKey         = "jobs"
	applicationsKey = "apps"
)

type keyValueStore interface {
	Load(ctx context.Context, key string) (string, bool, error)
	Batch(ctx context.Context, writes map[string]string, removals []string) error
}

// State persists the dashboard snapshot as four JSON records.
type State struct {
	data keyValueStore
}

func NewStateRepository(data keyValueStore) *State {
	return &State{data: data}
}

// Load reads the snapshot. Missing records fall back to the seed roster and
// jobs, a logged out session and no applications.
func (s *State) Load(ctx context.Context) (entities.Snapshot, error) {
	snapshot := entities.Snapshot{
		Users:        DefaultUsers(),
		Jobs:         DefaultJobs(),
		Applications: []entities.Application{},
	}

	var users []entities.User
	found, err := s.loadInto(ctx, usersKey, &users)
	if err != nil {
		return entities.Snapshot{}, err
	}
	if found {
		snapshot.Users = users
	}

	var currentUser entities.User
	found, err = s.loadInto(ctx, currentUserKey, &currentUser)
	if err != nil {
		return entities.Snapshot{}, err
	}
	if found {
		snapshot.CurrentUser = &currentUser
	}

	var jobs []entities.Job
	found, err = s.loadInto(ctx, jobsKey, &jobs)
	if err != nil {
		return entities.Snapshot{}, err
	}
	if found {
		snapshot.Jobs = jobs
	}

	var applications []entities.Application
	found, err = s.loadInto(ctx, applicationsKey, &applications)
	if err != nil {
		return entities.Snapshot{}, err
	}
	if found && applications != nil {
		snapshot.Applications = applications
	}

	return snapshot, nil
}

// Save overwrites all four records in one transaction. A logged out session removes its record.
func (s *State) Save(ctx context.Context, snapshot entities.Snapshot) error {
	records := map[string]any{
		usersKey:        snapshot.Users,
		jobsKey:         snapshot.Jobs,
		applicationsKey: snapshot.Applications,
	}
	var removals []string
	if snapshot.CurrentUser != nil {
		records[currentUserKey] = snapshot.CurrentUser
	} else {
		removals = append(removals, currentUserKey)
	}

	writes := make(map[string]string, len(records))
	for key, value := range records {
		encoded, err := json.Marshal(value)
		if err != nil {
			return errors.Wrapf(err, "encode %s", key)
		}
		writes[key] = string(encoded)
	}

	return s.data.Batch(ctx, writes, removals)
}

func (s *State) loadInto(ctx context.Context, key string, target any) (bool, error) {
	value, found, err := s.data.Load(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err = json.Unmarshal([]byte(value), target); err != nil {
		return false, errors.Wrapf(err, "decode %s", key)
	}
	return true, nil
}
