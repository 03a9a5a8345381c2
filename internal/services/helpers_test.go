package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/google/generative-ai-go/genai"
	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/maxaizer/talenthub/internal/repositories"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memoryState struct {
	mu      sync.Mutex
	saved   entities.Snapshot
	saves   int
	failErr error
}

func (m *memoryState) Load(_ context.Context) (entities.Snapshot, error) {
	return entities.Snapshot{
		Users:        repositories.DefaultUsers(),
		Jobs:         repositories.DefaultJobs(),
		Applications: []entities.Application{},
	}, nil
}

func (m *memoryState) Save(_ context.Context, snapshot entities.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.saved = snapshot
	m.saves++
	return nil
}

func (m *memoryState) fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
}

type mockAiClient struct {
	mock.Mock
}

func (m *mockAiClient) GenerateStructuredResponse(ctx context.Context, text string, schema *genai.Schema) (string, error) {
	args := m.Called(ctx, text, schema)
	return args.String(0), args.Error(1)
}

type mockMatcher struct {
	mock.Mock
}

func (m *mockMatcher) Assess(ctx context.Context, resumeText, jobDescription string) (entities.AssessmentResult, error) {
	args := m.Called(ctx, resumeText, jobDescription)
	return args.Get(0).(entities.AssessmentResult), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(user entities.User, text string) error {
	return m.Called(user, text).Error(0)
}

type testEnv struct {
	state        *memoryState
	store        *Store
	bus          EventBus.Bus
	auth         *AuthService
	jobs         *JobService
	applications *ApplicationService
	matcher      *mockMatcher
}

func newTestEnv(t *testing.T, options ApplicationOptions) *testEnv {
	state := &memoryState{}
	store, err := NewStore(context.Background(), state)
	require.NoError(t, err)

	bus := EventBus.New()
	matcher := &mockMatcher{}
	return &testEnv{
		state:        state,
		store:        store,
		bus:          bus,
		auth:         NewAuthService(store),
		jobs:         NewJobService(store, bus),
		applications: NewApplicationService(store, matcher, bus, options),
		matcher:      matcher,
	}
}

func (e *testEnv) login(t *testing.T, email string) entities.User {
	user, err := e.auth.Login(context.Background(), email, "")
	require.NoError(t, err)
	return user
}

func (e *testEnv) register(t *testing.T, name, email string, role entities.Role) entities.User {
	user, err := e.auth.Register(context.Background(), RegisterInput{Name: name, Email: email, Role: role})
	require.NoError(t, err)
	return user
}

func defaultOptions() ApplicationOptions {
	return ApplicationOptions{PendingTTL: time.Minute}
}
