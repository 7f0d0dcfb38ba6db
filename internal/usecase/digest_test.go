package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jortega/gastobot/internal/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	chatIDs []int64
}

func (f *fakeUserRepo) Authorize(_ context.Context, chatID int64, _ time.Time) error {
	for _, id := range f.chatIDs {
		if id == chatID {
			return nil
		}
	}
	f.chatIDs = append(f.chatIDs, chatID)
	return nil
}

func (f *fakeUserRepo) GetByChatID(_ context.Context, chatID int64) (*domain.User, error) {
	for _, id := range f.chatIDs {
		if id == chatID {
			return &domain.User{ChatID: chatID, CurrencySymbol: "$"}, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Exists(_ context.Context, chatID int64) (bool, error) {
	for _, id := range f.chatIDs {
		if id == chatID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateProfile(context.Context, int64, string, string) error {
	return nil
}

func (f *fakeUserRepo) ListChatIDs(context.Context) ([]int64, error) {
	return f.chatIDs, nil
}

type fakeNotifier struct {
	failFor  int64
	notified []int64
}

func (f *fakeNotifier) Notify(chatID int64, _ string) error {
	if chatID == f.failFor {
		return errors.New("blocked by recipient")
	}
	f.notified = append(f.notified, chatID)
	return nil
}

func TestDigestSkipsFailedDeliveriesAndContinues(t *testing.T) {
	users := &fakeUserRepo{chatIDs: []int64{1, 2, 3}}
	registry := NewRegistry(users, 1)
	ledger := newTestLedger(&fakeExpenseRepo{})
	notifier := &fakeNotifier{failFor: 2}

	job := NewDigestJob(registry, ledger, notifier, zap.NewNop())
	job.Run(context.Background())

	require.Equal(t, []int64{1, 3}, notifier.notified)
}

func TestRegistryAdminIsAlwaysAllowed(t *testing.T) {
	registry := NewRegistry(&fakeUserRepo{}, 99)

	allowed, err := registry.IsAllowed(context.Background(), 99)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = registry.IsAllowed(context.Background(), 100)
	require.NoError(t, err)
	require.False(t, allowed)
}

func TestRegistryAuthorizeGrantsAccess(t *testing.T) {
	registry := NewRegistry(&fakeUserRepo{}, 99)

	require.NoError(t, registry.Authorize(context.Background(), 7))

	allowed, err := registry.IsAllowed(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, allowed)
}

func TestCurrencySymbolFallsBackForUnknownChat(t *testing.T) {
	registry := NewRegistry(&fakeUserRepo{}, 99)
	require.Equal(t, "$", registry.CurrencySymbol(context.Background(), 123))
}
