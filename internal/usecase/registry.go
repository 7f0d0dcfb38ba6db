package usecase

import (
	"context"
	"time"

	"github.com/jortega/gastobot/internal/domain"
)

// Registry decides who may use the bot. A chat is allowed when it is the
// configured administrator or has a user row; the admin may grant access to
// others.
type Registry struct {
	users       domain.UserRepository
	adminChatID int64
	now         func() time.Time
}

func NewRegistry(users domain.UserRepository, adminChatID int64) *Registry {
	return &Registry{users: users, adminChatID: adminChatID, now: time.Now}
}

func (r *Registry) IsAdmin(chatID int64) bool {
	return chatID == r.adminChatID
}

func (r *Registry) IsAllowed(ctx context.Context, chatID int64) (bool, error) {
	if r.IsAdmin(chatID) {
		return true, nil
	}
	return r.users.Exists(ctx, chatID)
}

// Authorize grants access to chatID. Idempotent: repeated grants keep the
// original created_at.
func (r *Registry) Authorize(ctx context.Context, chatID int64) error {
	return r.users.Authorize(ctx, chatID, r.now())
}

// RefreshProfile overwrites the last known username and display name. Does
// nothing for chats that were never authorized.
func (r *Registry) RefreshProfile(ctx context.Context, chatID int64, username, displayName string) error {
	return r.users.UpdateProfile(ctx, chatID, username, displayName)
}

func (r *Registry) GetUser(ctx context.Context, chatID int64) (*domain.User, error) {
	return r.users.GetByChatID(ctx, chatID)
}

// CurrencySymbol is display-only; unknown chats fall back to the default.
func (r *Registry) CurrencySymbol(ctx context.Context, chatID int64) string {
	user, err := r.users.GetByChatID(ctx, chatID)
	if err != nil || user.CurrencySymbol == "" {
		return "$"
	}
	return user.CurrencySymbol
}

func (r *Registry) ListChatIDs(ctx context.Context) ([]int64, error) {
	return r.users.ListChatIDs(ctx)
}
