package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jortega/gastobot/internal/digest"
	"github.com/jortega/gastobot/internal/domain"
	"github.com/jortega/gastobot/internal/usecase"
	"go.uber.org/zap"
)

// ChartRenderer is the rendering collaborator: labeled series in, PNG out.
type ChartRenderer interface {
	RenderBarChart(title string, labels []string, values []float64) ([]byte, error)
	RenderLineChart(title string, xLabels []string, values []float64) ([]byte, error)
}

type Handlers struct {
	registry *usecase.Registry
	ledger   *usecase.Ledger
	renderer ChartRenderer
	dialogs  *DialogStore
	logger   *zap.Logger
}

func NewHandlers(registry *usecase.Registry, ledger *usecase.Ledger, renderer ChartRenderer, logger *zap.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		ledger:   ledger,
		renderer: renderer,
		dialogs:  NewDialogStore(),
		logger:   logger,
	}
}

func (h *Handlers) HandleUpdate(ctx context.Context, api *tgbotapi.BotAPI, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.handleCallback(ctx, api, update.CallbackQuery)
		return
	}
	if update.Message == nil || update.Message.From == nil {
		return
	}
	if update.Message.IsCommand() {
		h.handleCommand(ctx, api, update)
		return
	}
	h.handleDialogMessage(ctx, api, update.Message)
}

func (h *Handlers) handleCommand(ctx context.Context, api *tgbotapi.BotAPI, update tgbotapi.Update) {
	command := update.Message.Command()
	args := update.Message.CommandArguments()
	chatID := update.Message.Chat.ID

	h.logger.Info(
		"telegram command received",
		zap.Int64("chat_id", chatID),
		zap.String("username", update.Message.From.UserName),
		zap.String("command", command),
	)

	// Any command abandons an in-progress guided entry.
	if command != "new" {
		h.dialogs.Clear(chatID)
	}

	switch command {
	case "myid":
		// Works without authorization: it is how access is requested.
		h.reply(api, chatID, fmt.Sprintf("Your chat id is: %d", chatID))
	case "authorize":
		h.handleAuthorize(ctx, api, chatID, args)
	case "start":
		h.handleStart(ctx, api, chatID, update.Message.From)
	case "help":
		if !h.requireAllowed(ctx, api, chatID) {
			return
		}
		h.reply(api, chatID, HelpText)
	case "expense":
		h.handleExpense(ctx, api, chatID, args)
	case "today":
		h.handleToday(ctx, api, chatID)
	case "chart_today":
		h.handleChartToday(ctx, api, chatID)
	case "chart_week":
		h.handleChartWeek(ctx, api, chatID)
	case "chart_month":
		h.handleChartMonth(ctx, api, chatID)
	case "new":
		h.handleNewExpense(ctx, api, chatID)
	case "cancel":
		h.sendMessage(api, tgbotapi.NewMessage(chatID, "Expense entry cancelled."), removeKeyboard())
	default:
		h.reply(api, chatID, "Unknown command.\n\n"+HelpText)
	}
}

func (h *Handlers) handleCallback(ctx context.Context, api *tgbotapi.BotAPI, cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID

	if _, err := api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		h.logger.Warn("failed to ack callback", zap.Error(err))
	}

	h.logger.Info("telegram callback received", zap.Int64("chat_id", chatID), zap.String("data", cq.Data))

	switch cq.Data {
	case "new_expense":
		h.handleNewExpense(ctx, api, chatID)
	case "today":
		h.handleToday(ctx, api, chatID)
	case "week":
		h.handleChartWeek(ctx, api, chatID)
	case "month":
		h.handleChartMonth(ctx, api, chatID)
	}
}

func (h *Handlers) handleStart(ctx context.Context, api *tgbotapi.BotAPI, chatID int64, from *tgbotapi.User) {
	if !h.requireAllowed(ctx, api, chatID) {
		return
	}

	if err := h.registry.RefreshProfile(ctx, chatID, from.UserName, from.FirstName); err != nil {
		h.logger.Warn("failed to refresh profile", zap.Int64("chat_id", chatID), zap.Error(err))
	}

	name := from.FirstName
	if name == "" {
		name = "there"
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("New expense", "new_expense"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Today", "today"),
			tgbotapi.NewInlineKeyboardButtonData("Week", "week"),
			tgbotapi.NewInlineKeyboardButtonData("Month", "month"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Hi %s! What would you like to do?\n\n%s", name, HelpText))
	msg.ReplyMarkup = keyboard
	if _, err := api.Send(msg); err != nil {
		h.logger.Warn("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *Handlers) handleAuthorize(ctx context.Context, api *tgbotapi.BotAPI, chatID int64, args string) {
	if !h.registry.IsAdmin(chatID) {
		h.reply(api, chatID, "Only the administrator can authorize users.")
		return
	}

	targetID, err := ParseChatID(args)
	if err != nil {
		h.reply(api, chatID, "Usage: /authorize <chat_id>")
		return
	}

	if err := h.registry.Authorize(ctx, targetID); err != nil {
		h.logger.Warn("authorize failed", zap.Int64("target_id", targetID), zap.Error(err))
		h.reply(api, chatID, internalErrorText)
		return
	}

	h.logger.Info("user authorized", zap.Int64("target_id", targetID))
	h.reply(api, chatID, fmt.Sprintf("User %d authorized.", targetID))

	// Best effort: the target may never have opened a chat with the bot.
	welcome := tgbotapi.NewMessage(targetID, "You have been authorized to use the expense bot.\n\n"+HelpText)
	if _, err := api.Send(welcome); err != nil {
		h.logger.Warn("failed to welcome authorized user", zap.Int64("target_id", targetID), zap.Error(err))
	}
}

func (h *Handlers) handleExpense(ctx context.Context, api *tgbotapi.BotAPI, chatID int64, args string) {
	if !h.requireAllowed(ctx, api, chatID) {
		return
	}

	amountText, category, description, err := ParseExpenseArgs(args)
	if err != nil {
		h.reply(api, chatID, "Usage:\n/expense <amount> <category> [description...]\nExample: /expense 150 food tacos al pastor")
		return
	}

	amount, err := usecase.ParseAmount(amountText)
	if err != nil {
		h.reply(api, chatID, "The amount must be a number. Example: /expense 150 food")
		return
	}

	expense, err := h.ledger.Record(ctx, chatID, amount, category, description)
	if err != nil {
		h.logger.Warn("record failed", zap.Int64("chat_id", chatID), zap.Error(err))
		h.reply(api, chatID, internalErrorText)
		return
	}

	currency := h.registry.CurrencySymbol(ctx, chatID)
	h.reply(api, chatID, digest.RecordedText(currency, expense.Amount, expense.Category, expense.Description))
}

func (h *Handlers) handleToday(ctx context.Context, api *tgbotapi.BotAPI, chatID int64) {
	if !h.requireAllowed(ctx, api, chatID) {
		return
	}

	today := h.ledger.Today()
	summary, err := h.ledger.SummarizeDay(ctx, chatID, today)
	if err != nil {
		h.logger.Warn("today summary failed", zap.Int64("chat_id", chatID), zap.Error(err))
		h.reply(api, chatID, internalErrorText)
		return
	}

	currency := h.registry.CurrencySymbol(ctx, chatID)
	h.reply(api, chatID, digest.DaySummaryText(today, currency, summary))
}

func (h *Handlers) handleChartToday(ctx context.Context, api *tgbotapi.BotAPI, chatID int64) {
	if !h.requireAllowed(ctx, api, chatID) {
		return
	}

	today := h.ledger.Today()
	totals, err := h.ledger.SummarizeCategoriesInRange(ctx, chatID, today, today)
	if err != nil {
		h.logger.Warn("chart_today query failed", zap.Int64("chat_id", chatID), zap.Error(err))
		h.reply(api, chatID, internalErrorText)
		return
	}
	if len(totals) == 0 {
		h.reply(api, chatID, "No expenses recorded today, nothing to chart.")
		return
	}

	labels, values := digest.CategorySeries(totals)
	title := "Expenses by category - " + digest.DayLabel(today)
	h.sendChart(api, chatID, func() ([]byte, error) {
		return h.renderer.RenderBarChart(title, labels, values)
	})
}

func (h *Handlers) handleChartWeek(ctx context.Context, api *tgbotapi.BotAPI, chatID int64) {
	if !h.requireAllowed(ctx, api, chatID) {
		return
	}

	end := h.ledger.Now()
	start := end.AddDate(0, 0, -6)
	totals, err := h.ledger.SummarizeDailyTotalsInRange(ctx, chatID, start.Format(domain.DateLayout), end.Format(domain.DateLayout))
	if err != nil {
		h.logger.Warn("chart_week query failed", zap.Int64("chat_id", chatID), zap.Error(err))
		h.reply(api, chatID, internalErrorText)
		return
	}
	if len(totals) == 0 {
		h.reply(api, chatID, "No expenses in the last 7 days, nothing to chart.")
		return
	}

	labels, values := digest.WeekSeries(end, totals)
	h.sendChart(api, chatID, func() ([]byte, error) {
		return h.renderer.RenderLineChart("Daily expenses - last 7 days", labels, values)
	})
}

func (h *Handlers) handleChartMonth(ctx context.Context, api *tgbotapi.BotAPI, chatID int64) {
	if !h.requireAllowed(ctx, api, chatID) {
		return
	}

	now := h.ledger.Now()
	start := now.AddDate(0, 0, 1-now.Day())
	totals, err := h.ledger.SummarizeCategoriesInRange(ctx, chatID, start.Format(domain.DateLayout), now.Format(domain.DateLayout))
	if err != nil {
		h.logger.Warn("chart_month query failed", zap.Int64("chat_id", chatID), zap.Error(err))
		h.reply(api, chatID, internalErrorText)
		return
	}
	if len(totals) == 0 {
		h.reply(api, chatID, "No expenses this month, nothing to chart.")
		return
	}

	labels, values := digest.CategorySeries(totals)
	title := "Expenses by category - " + digest.MonthLabel(now.Format(domain.DateLayout))
	h.sendChart(api, chatID, func() ([]byte, error) {
		return h.renderer.RenderBarChart(title, labels, values)
	})
}

func (h *Handlers) handleNewExpense(ctx context.Context, api *tgbotapi.BotAPI, chatID int64) {
	if !h.requireAllowed(ctx, api, chatID) {
		return
	}

	h.dialogs.Begin(chatID)
	h.sendMessage(api,
		tgbotapi.NewMessage(chatID, "Let's record a new expense.\n\nFirst, how much did you spend? (just the number, e.g. 150)"),
		removeKeyboard(),
	)
}

func (h *Handlers) handleDialogMessage(ctx context.Context, api *tgbotapi.BotAPI, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	state, ok := h.dialogs.Get(chatID)
	if !ok {
		return
	}

	switch state.step {
	case stepAmount:
		amount, err := usecase.ParseAmount(message.Text)
		if err != nil {
			h.reply(api, chatID, "The amount must be a number. Try again (e.g. 150).")
			return
		}
		h.dialogs.SetAmount(chatID, amount)

		keyboard := tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton("food"),
				tgbotapi.NewKeyboardButton("transport"),
				tgbotapi.NewKeyboardButton("utilities"),
			),
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton("rent"),
				tgbotapi.NewKeyboardButton("health"),
				tgbotapi.NewKeyboardButton("other"),
			),
		)
		keyboard.OneTimeKeyboard = true
		keyboard.ResizeKeyboard = true

		msg := tgbotapi.NewMessage(chatID, "Which category does this expense belong to?\nPick a button or type another category.")
		msg.ReplyMarkup = keyboard
		if _, err := api.Send(msg); err != nil {
			h.logger.Warn("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	case stepCategory:
		h.dialogs.SetCategory(chatID, message.Text)
		h.sendMessage(api,
			tgbotapi.NewMessage(chatID, "Write a short description of the expense.\nSend a dash (-) to skip it."),
			removeKeyboard(),
		)
	case stepDescription:
		description := message.Text
		if description == "-" {
			description = ""
		}

		expense, err := h.ledger.Record(ctx, chatID, state.amount, state.category, description)
		if err != nil {
			h.logger.Warn("record failed", zap.Int64("chat_id", chatID), zap.Error(err))
			h.dialogs.Clear(chatID)
			h.reply(api, chatID, internalErrorText)
			return
		}
		h.dialogs.Clear(chatID)

		currency := h.registry.CurrencySymbol(ctx, chatID)
		h.reply(api, chatID, digest.RecordedText(currency, expense.Amount, expense.Category, expense.Description))
	}
}

const internalErrorText = "Something went wrong. Please try again."

// requireAllowed gates a command behind the authorization registry. It
// replies with the refusal text itself and returns false when the caller may
// not proceed.
func (h *Handlers) requireAllowed(ctx context.Context, api *tgbotapi.BotAPI, chatID int64) bool {
	allowed, err := h.registry.IsAllowed(ctx, chatID)
	if err != nil {
		h.logger.Warn("authorization check failed", zap.Int64("chat_id", chatID), zap.Error(err))
		h.reply(api, chatID, internalErrorText)
		return false
	}
	if !allowed {
		h.reply(api, chatID, notAuthorizedText)
		return false
	}
	return true
}

func (h *Handlers) sendChart(api *tgbotapi.BotAPI, chatID int64, render func() ([]byte, error)) {
	png, err := render()
	if err != nil {
		h.logger.Warn("chart render failed", zap.Int64("chat_id", chatID), zap.Error(err))
		h.reply(api, chatID, internalErrorText)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "chart.png", Bytes: png})
	if _, err := api.Send(photo); err != nil {
		h.logger.Warn("failed to send chart", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *Handlers) reply(api *tgbotapi.BotAPI, chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := api.Send(msg); err != nil {
		h.logger.Warn("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *Handlers) sendMessage(api *tgbotapi.BotAPI, msg tgbotapi.MessageConfig, markup interface{}) {
	msg.ReplyMarkup = markup
	if _, err := api.Send(msg); err != nil {
		h.logger.Warn("failed to send message", zap.Int64("chat_id", msg.ChatID), zap.Error(err))
	}
}

func removeKeyboard() tgbotapi.ReplyKeyboardRemove {
	return tgbotapi.NewRemoveKeyboard(false)
}
