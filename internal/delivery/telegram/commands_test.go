package telegram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseExpenseArgs(t *testing.T) {
	amount, category, description, err := ParseExpenseArgs("150 food tacos al pastor")
	require.NoError(t, err)
	require.Equal(t, "150", amount)
	require.Equal(t, "food", category)
	require.Equal(t, "tacos al pastor", description)

	amount, category, description, err = ParseExpenseArgs("99.50 transport")
	require.NoError(t, err)
	require.Equal(t, "99.50", amount)
	require.Equal(t, "transport", category)
	require.Empty(t, description)

	_, _, _, err = ParseExpenseArgs("150")
	require.ErrorIs(t, err, ErrInvalidArguments)

	_, _, _, err = ParseExpenseArgs("")
	require.ErrorIs(t, err, ErrInvalidArguments)
}

func TestParseChatID(t *testing.T) {
	chatID, err := ParseChatID(" 123456789 ")
	require.NoError(t, err)
	require.Equal(t, int64(123456789), chatID)

	_, err = ParseChatID("abc")
	require.ErrorIs(t, err, ErrInvalidArguments)

	_, err = ParseChatID("1 2")
	require.ErrorIs(t, err, ErrInvalidArguments)

	_, err = ParseChatID("")
	require.ErrorIs(t, err, ErrInvalidArguments)
}
