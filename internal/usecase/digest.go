package usecase

import (
	"context"

	"github.com/jortega/gastobot/internal/digest"
	"go.uber.org/zap"
)

// Notifier delivers a text message to a chat.
type Notifier interface {
	Notify(chatID int64, text string) error
}

// DigestJob pushes today's summary to every authorized chat. It runs once a
// day; scheduling lives in the app wiring.
type DigestJob struct {
	registry *Registry
	ledger   *Ledger
	notifier Notifier
	logger   *zap.Logger
}

func NewDigestJob(registry *Registry, ledger *Ledger, notifier Notifier, logger *zap.Logger) *DigestJob {
	return &DigestJob{registry: registry, ledger: ledger, notifier: notifier, logger: logger}
}

// Run fans the digest out sequentially. A failure for one chat is logged and
// skipped; the remaining chats still get theirs.
func (j *DigestJob) Run(ctx context.Context) {
	today := j.ledger.Today()

	chatIDs, err := j.registry.ListChatIDs(ctx)
	if err != nil {
		j.logger.Error("digest: failed to list chats", zap.Error(err))
		return
	}

	sent := 0
	for _, chatID := range chatIDs {
		summary, err := j.ledger.SummarizeDay(ctx, chatID, today)
		if err != nil {
			j.logger.Warn("digest: summary failed", zap.Int64("chat_id", chatID), zap.Error(err))
			continue
		}

		text := digest.DaySummaryText(today, j.registry.CurrencySymbol(ctx, chatID), summary)
		if err := j.notifier.Notify(chatID, text); err != nil {
			j.logger.Warn("digest: delivery failed", zap.Int64("chat_id", chatID), zap.Error(err))
			continue
		}
		sent++
	}

	j.logger.Info("digest complete", zap.String("date", today), zap.Int("chats", len(chatIDs)), zap.Int("sent", sent))
}
