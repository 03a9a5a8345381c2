package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/maxaizer/talenthub/internal/logger"
	log "github.com/sirupsen/logrus"
)

type stateRepository interface {
	Load(ctx context.Context) (entities.Snapshot, error)
	Save(ctx context.Context, snapshot entities.Snapshot) error
}

// Store owns the current snapshot. Mutations are serialized; a new snapshot is
// persisted before it becomes current.
type Store struct {
	mu      sync.RWMutex
	state   stateRepository
	current entities.Snapshot
}

func NewStore(ctx context.Context, state stateRepository) (*Store, error) {
	snapshot, err := state.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return &Store{state: state, current: snapshot}, nil
}

func (s *Store) Snapshot() entities.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

func (s *Store) CurrentUser() (entities.User, error) {
	return requireUser(s.Snapshot())
}

func (s *Store) update(ctx context.Context, fn func(entities.Snapshot) (entities.Snapshot, error)) (entities.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.current.Clone())
	if err != nil {
		return entities.Snapshot{}, err
	}

	if err = s.state.Save(ctx, next); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to save state: %v", err)
		return entities.Snapshot{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.current = next
	return next.Clone(), nil
}

func requireUser(snapshot entities.Snapshot) (entities.User, error) {
	if snapshot.CurrentUser == nil {
		return entities.User{}, ErrNotLoggedIn
	}
	return *snapshot.CurrentUser, nil
}

func requireCandidate(snapshot entities.Snapshot) (entities.User, error) {
	user, err := requireUser(snapshot)
	if err != nil {
		return entities.User{}, err
	}
	if !user.IsCandidate() {
		return entities.User{}, fmt.Errorf("%w: candidates only", ErrForbidden)
	}
	return user, nil
}

func requireRecruiter(snapshot entities.Snapshot) (entities.User, error) {
	user, err := requireUser(snapshot)
	if err != nil {
		return entities.User{}, err
	}
	if !user.IsRecruiter() {
		return entities.User{}, fmt.Errorf("%w: recruiters only", ErrForbidden)
	}
	return user, nil
}
