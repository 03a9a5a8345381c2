package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/maxaizer/talenthub/internal/entities"
	log "github.com/sirupsen/logrus"
)

type RegisterInput struct {
	Name        string        `json:"name"`
	Email       string        `json:"email" validate:"required,email"`
	Password    string        `json:"password"`
	Role        entities.Role `json:"role" validate:"required,oneof=CANDIDATE RECRUITER"`
	CompanyName string        `json:"companyName"`
}

// AuthService is a session stub: accounts are looked up by email and passwords are never checked.
type AuthService struct {
	store *Store
}

func NewAuthService(store *Store) *AuthService {
	return &AuthService{store: store}
}

func (a *AuthService) Login(ctx context.Context, email, _ string) (entities.User, error) {
	var user entities.User
	_, err := a.store.update(ctx, func(snapshot entities.Snapshot) (entities.Snapshot, error) {
		found, ok := snapshot.FindUserByEmail(email)
		if !ok {
			return snapshot, ErrAccountNotFound
		}
		user = found
		return startSession(snapshot, found), nil
	})
	if err != nil {
		return entities.User{}, err
	}

	log.Infof("user %v logged in", user.ID)
	return user, nil
}

func (a *AuthService) Register(ctx context.Context, input RegisterInput) (entities.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := validateInput(input); err != nil {
		return entities.User{}, err
	}

	var user entities.User
	_, err := a.store.update(ctx, func(snapshot entities.Snapshot) (entities.Snapshot, error) {
		if _, exists := snapshot.FindUserByEmail(input.Email); exists {
			return snapshot, fmt.Errorf("%w: %s", ErrAccountExists, entities.NormalizeEmail(input.Email))
		}
		user = entities.NewUser(input.Name, input.Email, input.Role)
		if user.IsRecruiter() {
			user.CompanyName = input.CompanyName
		}
		return startSession(snapshot, user), nil
	})
	if err != nil {
		return entities.User{}, err
	}

	log.Infof("registered %v %v", user.Role, user.ID)
	return user, nil
}

func (a *AuthService) Logout(ctx context.Context) error {
	_, err := a.store.update(ctx, func(snapshot entities.Snapshot) (entities.Snapshot, error) {
		snapshot.CurrentUser = nil
		return snapshot, nil
	})
	return err
}

func (a *AuthService) CurrentUser() (entities.User, error) {
	return a.store.CurrentUser()
}

// LinkTelegram stores the chat notifications for the account are sent to.
func (a *AuthService) LinkTelegram(ctx context.Context, email string, chatID int64) (entities.User, error) {
	var user entities.User
	_, err := a.store.update(ctx, func(snapshot entities.Snapshot) (entities.Snapshot, error) {
		found, ok := snapshot.FindUserByEmail(email)
		if !ok {
			return snapshot, ErrAccountNotFound
		}
		found.TelegramChatID = chatID
		user = found
		return snapshot.WithUser(found), nil
	})
	return user, err
}

func startSession(snapshot entities.Snapshot, user entities.User) entities.Snapshot {
	next := snapshot.WithUser(user)
	next.CurrentUser = &user
	return next
}
