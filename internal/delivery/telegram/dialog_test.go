package telegram

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDialogProgressesThroughSteps(t *testing.T) {
	store := NewDialogStore()

	_, ok := store.Get(1)
	require.False(t, ok)

	store.Begin(1)
	state, ok := store.Get(1)
	require.True(t, ok)
	require.Equal(t, stepAmount, state.step)

	store.SetAmount(1, decimal.RequireFromString("150"))
	state, ok = store.Get(1)
	require.True(t, ok)
	require.Equal(t, stepCategory, state.step)
	require.Equal(t, "150", state.amount.String())

	store.SetCategory(1, "food")
	state, ok = store.Get(1)
	require.True(t, ok)
	require.Equal(t, stepDescription, state.step)
	require.Equal(t, "food", state.category)
}

func TestDialogCancelDiscardsState(t *testing.T) {
	store := NewDialogStore()

	store.Begin(1)
	store.SetAmount(1, decimal.RequireFromString("150"))
	store.Clear(1)

	_, ok := store.Get(1)
	require.False(t, ok)
}

func TestDialogStateDoesNotLeakAcrossChats(t *testing.T) {
	store := NewDialogStore()

	store.Begin(1)
	store.Begin(2)
	store.SetAmount(1, decimal.RequireFromString("150"))
	store.SetAmount(2, decimal.RequireFromString("42"))
	store.SetCategory(1, "food")

	one, ok := store.Get(1)
	require.True(t, ok)
	two, ok := store.Get(2)
	require.True(t, ok)

	require.Equal(t, "150", one.amount.String())
	require.Equal(t, "food", one.category)
	require.Equal(t, stepDescription, one.step)

	require.Equal(t, "42", two.amount.String())
	require.Empty(t, two.category)
	require.Equal(t, stepCategory, two.step)

	store.Clear(1)
	_, ok = store.Get(2)
	require.True(t, ok)
}

func TestDialogSettersIgnoreInactiveChats(t *testing.T) {
	store := NewDialogStore()

	store.SetAmount(1, decimal.RequireFromString("150"))
	store.SetCategory(1, "food")

	_, ok := store.Get(1)
	require.False(t, ok)
}
