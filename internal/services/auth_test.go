package services

import (
	"context"
	"testing"

	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Login_IsCaseInsensitiveAndStartsSession(t *testing.T) {
	env := newTestEnv(t, defaultOptions())

	user, err := env.auth.Login(context.Background(), "  JOHN@example.com ", "anything")
	require.NoError(t, err)
	assert.Equal(t, "c1", user.ID)

	current, err := env.auth.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "c1", current.ID)
	require.NotNil(t, env.state.saved.CurrentUser)
	assert.Equal(t, "c1", env.state.saved.CurrentUser.ID)
}

func Test_Login_UnknownEmailFails(t *testing.T) {
	env := newTestEnv(t, defaultOptions())

	_, err := env.auth.Login(context.Background(), "nobody@example.com", "")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	_, err = env.auth.CurrentUser()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func Test_Register_CreatesUserWithDefaults(t *testing.T) {
	env := newTestEnv(t, defaultOptions())

	user := env.register(t, "", "Ann.Smith@Example.com", entities.RoleCandidate)

	assert.Equal(t, "ann.smith@example.com", user.Email)
	assert.Equal(t, "ann.smith", user.Name)
	assert.Equal(t, entities.RoleCandidate, user.Role)
	assert.NotEmpty(t, user.ID)

	snapshot := env.store.Snapshot()
	assert.Len(t, snapshot.Users, 3)
	require.NotNil(t, snapshot.CurrentUser)
	assert.Equal(t, user.ID, snapshot.CurrentUser.ID)
}

func Test_Register_TrimsEmailBeforeValidation(t *testing.T) {
	env := newTestEnv(t, defaultOptions())

	user := env.register(t, "Ann", "  ann@x.com ", entities.RoleCandidate)
	assert.Equal(t, "ann@x.com", user.Email)

	_, err := env.auth.Register(context.Background(), RegisterInput{Email: " ANN@x.com", Role: entities.RoleCandidate})
	assert.ErrorIs(t, err, ErrAccountExists)
}

func Test_Register_RecruiterKeepsCompany(t *testing.T) {
	env := newTestEnv(t, defaultOptions())

	user, err := env.auth.Register(context.Background(), RegisterInput{
		Name: "Raj", Email: "raj@acme.io", Role: entities.RoleRecruiter, CompanyName: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", user.CompanyName)
}

func Test_Register_RejectsEmailDifferingOnlyByCase(t *testing.T) {
	env := newTestEnv(t, defaultOptions())

	_, err := env.auth.Register(context.Background(), RegisterInput{Email: "JANE@TechFlow.com", Role: entities.RoleRecruiter})

	assert.ErrorIs(t, err, ErrAccountExists)
	assert.Len(t, env.store.Snapshot().Users, 2)
	assert.Equal(t, 0, env.state.saves)
}

func Test_Register_InvalidInputFails(t *testing.T) {
	env := newTestEnv(t, defaultOptions())

	_, err := env.auth.Register(context.Background(), RegisterInput{Email: "not-an-email", Role: entities.RoleCandidate})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.auth.Register(context.Background(), RegisterInput{Email: "a@b.co", Role: "ADMIN"})
	assert.ErrorIs(t, err, ErrValidation)
}

func Test_Logout_ClearsSession(t *testing.T) {
	env := newTestEnv(t, defaultOptions())
	env.login(t, "john@example.com")

	require.NoError(t, env.auth.Logout(context.Background()))

	assert.Nil(t, env.store.Snapshot().CurrentUser)
	assert.Nil(t, env.state.saved.CurrentUser)
}

func Test_LinkTelegram_StoresChatID(t *testing.T) {
	env := newTestEnv(t, defaultOptions())
	env.login(t, "john@example.com")

	user, err := env.auth.LinkTelegram(context.Background(), "John@Example.com", 4242)
	require.NoError(t, err)
	assert.Equal(t, int64(4242), user.TelegramChatID)

	current, err := env.auth.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, int64(4242), current.TelegramChatID)

	_, err = env.auth.LinkTelegram(context.Background(), "ghost@example.com", 1)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func Test_Store_PersistenceFailureKeepsPreviousState(t *testing.T) {
	env := newTestEnv(t, defaultOptions())
	env.state.fail(assert.AnError)

	_, err := env.auth.Register(context.Background(), RegisterInput{Email: "new@example.com", Role: entities.RoleCandidate})

	assert.ErrorIs(t, err, ErrPersistence)
	snapshot := env.store.Snapshot()
	assert.Len(t, snapshot.Users, 2)
	assert.Nil(t, snapshot.CurrentUser)
}
