package telegram

import (
	"errors"
	"strconv"
	"strings"
)

const HelpText = `Commands:
/start - greeting and quick actions
/help - show this help
/expense <amount> <category> [description...] - record an expense
/new - record an expense step by step
/cancel - abort the step-by-step entry
/today - today's summary
/chart_today - today's expenses by category (bar chart)
/chart_week - daily expenses, last 7 days (line chart)
/chart_month - this month's expenses by category (bar chart)
/myid - show your chat id

Example:
/expense 150 food tacos al pastor
`

const notAuthorizedText = "You are not authorized to use this bot.\n\n" +
	"To request access:\n" +
	"1. Send /myid to see your chat id.\n" +
	"2. Send that number to the bot administrator."

var ErrInvalidArguments = errors.New("invalid arguments")

// ParseExpenseArgs splits "/expense <amount> <category> [description...]".
// Everything after the category is the description.
func ParseExpenseArgs(args string) (amountText, category, description string, err error) {
	parts := strings.Fields(args)
	if len(parts) < 2 {
		return "", "", "", ErrInvalidArguments
	}
	return parts[0], parts[1], strings.Join(parts[2:], " "), nil
}

// ParseChatID parses the single chat-id argument of /authorize.
func ParseChatID(args string) (int64, error) {
	parts := strings.Fields(args)
	if len(parts) != 1 {
		return 0, ErrInvalidArguments
	}
	chatID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, ErrInvalidArguments
	}
	return chatID, nil
}
