package services

import (
	"fmt"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/maxaizer/talenthub/internal/events"
	"github.com/maxaizer/talenthub/internal/logger"
	log "github.com/sirupsen/logrus"
)

type chatSender interface {
	SendMessage(chatID int64, text string) error
}

// Notifier delivers messages to users. Users with a linked Telegram chat get
// them there when a chat sender is configured; otherwise they are logged.
type Notifier struct {
	chat  chatSender
	store *Store
}

func NewNotifier(chat chatSender, store *Store) *Notifier {
	return &Notifier{chat: chat, store: store}
}

func (n *Notifier) Notify(user entities.User, text string) error {
	if n.chat == nil || user.TelegramChatID == 0 {
		log.Infof("notification for user %v: %s", user.ID, text)
		return nil
	}

	if err := n.chat.SendMessage(user.TelegramChatID, text); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).
			Errorf("failed to notify user %v: %v", user.ID, err)
		return err
	}
	return nil
}

func (n *Notifier) Subscribe(bus EventBus.Bus) error {
	if err := bus.SubscribeAsync(events.ApplicationSubmittedTopic, n.onApplicationSubmitted, false); err != nil {
		return err
	}
	return bus.SubscribeAsync(events.ApplicationStatusChangedTopic, n.onApplicationStatusChanged, false)
}

func (n *Notifier) onApplicationSubmitted(event events.ApplicationSubmitted) {
	snapshot := n.store.Snapshot()
	recruiter, ok := snapshot.FindUser(event.Job.RecruiterID)
	if !ok {
		return
	}
	candidateName := event.Application.CandidateID
	if candidate, found := snapshot.FindUser(event.Application.CandidateID); found {
		candidateName = candidate.Name
	}
	_ = n.Notify(recruiter, fmt.Sprintf("%s applied for %s (AI score %d).",
		candidateName, event.Job.Title, event.Application.AIScore))
}

func (n *Notifier) onApplicationStatusChanged(event events.ApplicationStatusChanged) {
	candidate, ok := n.store.Snapshot().FindUser(event.Application.CandidateID)
	if !ok {
		log.Warnf("status changed for unknown candidate %v", event.Application.CandidateID)
		return
	}
	_ = n.Notify(candidate, statusChangedMessage(event))
}

func statusChangedMessage(event events.ApplicationStatusChanged) string {
	return fmt.Sprintf("Your application for %s at %s moved from %s to %s.",
		event.Job.Title, event.Job.Company, event.Previous, event.Application.Status)
}
