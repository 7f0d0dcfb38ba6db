package telegram

import (
	"sync"

	"github.com/shopspring/decimal"
)

type dialogStep int

const (
	stepAmount dialogStep = iota
	stepCategory
	stepDescription
)

// dialogState is the scratch collected so far for one chat's step-by-step
// entry. Nothing is written to the ledger until the final step.
type dialogState struct {
	step     dialogStep
	amount   decimal.Decimal
	category string
}

// DialogStore holds in-progress guided entries keyed by chat id. In-memory
// only: a restart discards not-yet-committed entries.
type DialogStore struct {
	mu     sync.Mutex
	active map[int64]*dialogState
}

func NewDialogStore() *DialogStore {
	return &DialogStore{active: make(map[int64]*dialogState)}
}

func (s *DialogStore) Begin(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[chatID] = &dialogState{step: stepAmount}
}

// Get returns a copy of the chat's state, if a dialogue is in progress.
func (s *DialogStore) Get(chatID int64) (dialogState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.active[chatID]
	if !ok {
		return dialogState{}, false
	}
	return *state, true
}

func (s *DialogStore) SetAmount(chatID int64, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.active[chatID]; ok {
		state.amount = amount
		state.step = stepCategory
	}
}

func (s *DialogStore) SetCategory(chatID int64, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.active[chatID]; ok {
		state.category = category
		state.step = stepDescription
	}
}

// Clear discards any in-progress entry for the chat.
func (s *DialogStore) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, chatID)
}
