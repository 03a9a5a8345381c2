package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T) (*State, *Data) {
	dbCtx, err := NewDbContext(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbCtx.Close() })
	require.NoError(t, dbCtx.Migrate())

	data := NewDataRepository(dbCtx.DB)
	return NewStateRepository(data), data
}

func Test_Load_EmptyStoreReturnsSeed(t *testing.T) {
	state, _ := newTestState(t)

	snapshot, err := state.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, snapshot.Users, 2)
	assert.Len(t, snapshot.Jobs, 16)
	assert.Nil(t, snapshot.CurrentUser)
	assert.Empty(t, snapshot.Applications)
	assert.NotNil(t, snapshot.Applications)
}

func Test_SaveAndLoad_RoundTrip(t *testing.T) {
	state, _ := newTestState(t)
	ctx := context.Background()

	user := entities.NewUser("Ann", "ann@example.com", entities.RoleCandidate)
	job := DefaultJobs()[0]
	result := entities.AssessmentResult{Score: 82, MatchingPoints: []string{"Go"}, MissingSkills: []string{"GraphQL"}}

	snapshot := entities.Snapshot{
		Users:        append(DefaultUsers(), user),
		CurrentUser:  &user,
		Jobs:         DefaultJobs(),
		Applications: []entities.Application{entities.NewApplication(job, user, result, entities.Today())},
	}
	require.NoError(t, state.Save(ctx, snapshot))

	loaded, err := state.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, snapshot.Users, loaded.Users)
	require.NotNil(t, loaded.CurrentUser)
	assert.Equal(t, user, *loaded.CurrentUser)
	assert.Equal(t, snapshot.Jobs, loaded.Jobs)
	assert.Equal(t, snapshot.Applications, loaded.Applications)
}

func Test_Load_DoesNotMixSeedIntoStoredRecords(t *testing.T) {
	state, _ := newTestState(t)
	ctx := context.Background()

	user := entities.NewUser("Ann", "ann@example.com", entities.RoleCandidate)
	job := entities.Job{
		ID:              "j1",
		Title:           "Go Developer",
		Company:         "Acme",
		Requirements:    []string{"Go"},
		Location:        "Remote",
		Field:           "Software Engineering",
		ExperienceLevel: entities.LevelMid,
		PostedAt:        entities.Today(),
		RecruiterID:     "r1",
	}
	require.NoError(t, state.Save(ctx, entities.Snapshot{
		Users:        []entities.User{user},
		Jobs:         []entities.Job{job},
		Applications: []entities.Application{},
	}))

	loaded, err := state.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, []entities.User{user}, loaded.Users)
	assert.Equal(t, []entities.Job{job}, loaded.Jobs)
	assert.Empty(t, loaded.Applications)
}

func Test_Save_LoggedOutRemovesCurrentUser(t *testing.T) {
	state, data := newTestState(t)
	ctx := context.Background()

	user := DefaultUsers()[0]
	require.NoError(t, state.Save(ctx, entities.Snapshot{Users: DefaultUsers(), CurrentUser: &user, Jobs: DefaultJobs()}))

	_, found, err := data.Load(ctx, currentUserKey)
	require.NoError(t, err)
	assert.True(t, found)

	require.NoError(t, state.Save(ctx, entities.Snapshot{Users: DefaultUsers(), Jobs: DefaultJobs()}))

	_, found, err = data.Load(ctx, currentUserKey)
	require.NoError(t, err)
	assert.False(t, found)

	loaded, err := state.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded.CurrentUser)
}

func Test_Load_CorruptedRecordFails(t *testing.T) {
	state, data := newTestState(t)
	ctx := context.Background()

	require.NoError(t, data.Save(ctx, jobsKey, "{not json"))

	_, err := state.Load(ctx)
	assert.Error(t, err)
}
