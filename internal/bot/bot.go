package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/maxaizer/talenthub/internal/services"
	log "github.com/sirupsen/logrus"
)

type accountLinker interface {
	LinkTelegram(ctx context.Context, email string, chatID int64) (entities.User, error)
}

// Bot links Telegram chats to dashboard accounts and delivers notifications to them.
type Bot struct {
	client   *botApi.BotAPI
	api      apiInterface
	accounts accountLinker
}

func NewBot(token string, accounts accountLinker) (*Bot, error) {

	client, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("Authorized on account %s", client.Self.UserName)

	err = botApi.SetLogger(log.StandardLogger())
	if err != nil {
		return nil, err
	}

	createdBot, err := newBot(client, accounts)
	if err != nil {
		return nil, err
	}
	createdBot.client = client
	return createdBot, nil
}

func newBot(api apiInterface, accounts accountLinker) (*Bot, error) {
	if accounts == nil {
		return nil, errors.New("account linker is nil")
	}
	return &Bot{api: api, accounts: accounts}, nil
}

// Run handles updates until ctx is done.
func (b *Bot) Run(ctx context.Context) {

	updateConfig := botApi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.client.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			if update.Message.Chat.IsGroup() || update.Message.Chat.IsSuperGroup() {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) Stop() {
	if b.client != nil {
		b.client.StopReceivingUpdates()
	}
}

// SendMessage delivers a plain text notification.
func (b *Bot) SendMessage(chatID int64, text string) error {
	_, err := sendWithLogError(b.api, botApi.NewMessage(chatID, text))
	return err
}

func (b *Bot) handleMessage(ctx context.Context, message *botApi.Message) {

	var text string
	switch message.Command() {
	case startCommandName:
		text = b.linkAccount(ctx, message.Chat.ID, message.CommandArguments())
	case helpCommandName:
		text = usageText
	case "":
		text = "Expected a command. " + usageText
	default:
		text = "Unknown command! " + usageText
	}

	_, _ = sendWithLogError(b.api, botApi.NewMessage(message.Chat.ID, text))
}

func (b *Bot) linkAccount(ctx context.Context, chatID int64, email string) string {

	email = strings.TrimSpace(email)
	if email == "" {
		return usageText
	}

	user, err := b.accounts.LinkTelegram(ctx, email, chatID)
	switch {
	case errors.Is(err, services.ErrAccountNotFound):
		return fmt.Sprintf("No account found with email %s. Please register on the dashboard first.", email)
	case err != nil:
		log.Errorf("failed to link chat %v: %v", chatID, err)
		return "Internal error!"
	}

	log.Infof("chat %v linked to user %v", chatID, user.ID)
	return fmt.Sprintf("Hi %s! This chat will now receive your job alerts and application updates.", user.Name)
}
