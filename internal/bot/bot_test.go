package bot

import (
	"context"
	"strings"
	"testing"

	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/maxaizer/talenthub/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockApi struct {
	SentMessages []botApi.MessageConfig
}

func (m *mockApi) Send(chattable botApi.Chattable) (botApi.Message, error) {
	if msg, ok := chattable.(botApi.MessageConfig); ok {
		m.SentMessages = append(m.SentMessages, msg)
	}
	return botApi.Message{}, nil
}

type mockAccounts struct {
	mock.Mock
}

func (m *mockAccounts) LinkTelegram(ctx context.Context, email string, chatID int64) (entities.User, error) {
	args := m.Called(ctx, email, chatID)
	return args.Get(0).(entities.User), args.Error(1)
}

func commandMessage(chatID int64, text string) *botApi.Message {
	command, _, _ := strings.Cut(text, " ")
	return &botApi.Message{
		Text: text,
		Chat: &botApi.Chat{ID: chatID, Type: "private"},
		Entities: []botApi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(command)},
		},
	}
}

func newTestBot(t *testing.T, accounts *mockAccounts) (*Bot, *mockApi) {
	api := &mockApi{}
	b, err := newBot(api, accounts)
	require.NoError(t, err)
	return b, api
}

func Test_Start_LinksAccount(t *testing.T) {
	accounts := &mockAccounts{}
	accounts.On("LinkTelegram", mock.Anything, "john@example.com", int64(10)).
		Return(entities.User{ID: "c1", Name: "John Doe"}, nil).Once()
	b, api := newTestBot(t, accounts)

	b.handleMessage(context.Background(), commandMessage(10, "/start john@example.com"))

	require.Len(t, api.SentMessages, 1)
	assert.Equal(t, int64(10), api.SentMessages[0].ChatID)
	assert.Contains(t, api.SentMessages[0].Text, "Hi John Doe!")
	accounts.AssertExpectations(t)
}

func Test_Start_UnknownAccount(t *testing.T) {
	accounts := &mockAccounts{}
	accounts.On("LinkTelegram", mock.Anything, "ghost@example.com", int64(10)).
		Return(entities.User{}, services.ErrAccountNotFound).Once()
	b, api := newTestBot(t, accounts)

	b.handleMessage(context.Background(), commandMessage(10, "/start ghost@example.com"))

	require.Len(t, api.SentMessages, 1)
	assert.Contains(t, api.SentMessages[0].Text, "No account found with email ghost@example.com")
}

func Test_Start_WithoutEmail_ShowsUsage(t *testing.T) {
	accounts := &mockAccounts{}
	b, api := newTestBot(t, accounts)

	b.handleMessage(context.Background(), commandMessage(10, "/start"))

	require.Len(t, api.SentMessages, 1)
	assert.Equal(t, usageText, api.SentMessages[0].Text)
	accounts.AssertNotCalled(t, "LinkTelegram", mock.Anything, mock.Anything, mock.Anything)
}

func Test_PlainTextAndUnknownCommand(t *testing.T) {
	b, api := newTestBot(t, &mockAccounts{})

	b.handleMessage(context.Background(), &botApi.Message{Text: "hello", Chat: &botApi.Chat{ID: 3}})
	b.handleMessage(context.Background(), commandMessage(3, "/jobs"))

	require.Len(t, api.SentMessages, 2)
	assert.Contains(t, api.SentMessages[0].Text, "Expected a command.")
	assert.Contains(t, api.SentMessages[1].Text, "Unknown command!")
}

func Test_SendMessage(t *testing.T) {
	b, api := newTestBot(t, &mockAccounts{})

	require.NoError(t, b.SendMessage(42, "New jobs"))

	require.Len(t, api.SentMessages, 1)
	assert.Equal(t, int64(42), api.SentMessages[0].ChatID)
	assert.Equal(t, "New jobs", api.SentMessages[0].Text)
}

func Test_NewBot_RequiresAccounts(t *testing.T) {
	_, err := newBot(&mockApi{}, nil)
	assert.Error(t, err)
}
