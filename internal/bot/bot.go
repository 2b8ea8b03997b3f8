package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"chainboard/internal/config"
	"chainboard/internal/logger"
	"chainboard/internal/model"
	"chainboard/internal/observability"
	"chainboard/internal/service"
)

const (
	cbCompletePrefix = "complete:"

	menuLabelToday  = "📋 Today"
	menuLabelChains = "⛓ Chains"
	menuLabelWeek   = "📅 Week"
	menuLabelVideos = "🎥 Videos"
)

// Bot is the single-owner Telegram surface over the workspace.
type Bot struct {
	api       *tgbotapi.BotAPI
	workspace *service.Workspace
	config    *config.Config
	log       *logger.Logger

	mu          sync.Mutex
	ownerChatID int64
}

func New(token string, workspace *service.Workspace, cfg *config.Config, log *logger.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Info("bot authorized", "account", api.Self.UserName)

	return &Bot{
		api:         api,
		workspace:   workspace,
		config:      cfg,
		log:         log,
		ownerChatID: cfg.OwnerChatID,
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	b.log.Info("start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				b.log.Error("handle callback", "error", err)
			}
		case update.Message != nil:
			if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				b.log.Error("handle message", "error", err)
			}
		}
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil || !b.claimOwner(msg.Chat.ID) {
		return nil
	}

	if !msg.IsCommand() {
		switch strings.TrimSpace(msg.Text) {
		case menuLabelToday:
			return b.sendToday(ctx, msg.Chat.ID)
		case menuLabelChains:
			return b.sendChains(ctx, msg.Chat.ID)
		case menuLabelWeek:
			return b.sendWeek(ctx, msg.Chat.ID)
		case menuLabelVideos:
			return b.sendVideos(ctx, msg.Chat.ID)
		}
		return nil
	}

	switch msg.Command() {
	case "start", "help":
		return b.sendHelp(msg.Chat.ID)
	case "today":
		return b.sendToday(ctx, msg.Chat.ID)
	case "chains":
		return b.sendChains(ctx, msg.Chat.ID)
	case "week":
		return b.sendWeek(ctx, msg.Chat.ID)
	case "videos":
		return b.sendVideos(ctx, msg.Chat.ID)
	case "log":
		return b.handleLog(ctx, msg)
	case "note":
		return b.handleNote(ctx, msg)
	case "task":
		return b.handleTask(ctx, msg)
	default:
		return b.sendText(msg.Chat.ID, "Unknown command. Try /help.")
	}
}

// claimOwner restricts the bot to a single private chat. When no owner is
// configured, the first chat to talk to the bot becomes the owner.
func (b *Bot) claimOwner(chatID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ownerChatID == 0 {
		b.ownerChatID = chatID
		b.log.Info("owner chat claimed", "chat_id", chatID)
	}
	return b.ownerChatID == chatID
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	if query.Message == nil || !b.claimOwner(query.Message.Chat.ID) {
		return nil
	}

	data := query.Data
	if strings.HasPrefix(data, cbCompletePrefix) {
		taskID := strings.TrimPrefix(data, cbCompletePrefix)
		task, err := b.workspace.CompleteTask(ctx, taskID)
		if err != nil {
			b.answerCallback(query.ID, "Could not complete the task.")
			return err
		}
		b.answerCallback(query.ID, "Done ✅ "+truncateLabel(task.Title, 40))
		return b.sendToday(ctx, query.Message.Chat.ID)
	}

	b.answerCallback(query.ID, "")
	return nil
}

// handleLog logs watch minutes: "/log 25" targets the next incomplete video,
// "/log <video-id> 25" targets a specific one.
func (b *Bot) handleLog(ctx context.Context, msg *tgbotapi.Message) error {
	args := strings.Fields(msg.CommandArguments())

	var videoID string
	var rawMinutes string
	switch len(args) {
	case 1:
		next := b.workspace.NextVideo()
		if next == nil {
			return b.sendText(msg.Chat.ID, "🎉 The whole learning path is complete.")
		}
		videoID = next.ID
		rawMinutes = args[0]
	case 2:
		videoID = args[0]
		rawMinutes = args[1]
	default:
		return b.sendText(msg.Chat.ID, "Usage: /log <minutes> or /log <video-id> <minutes>")
	}

	minutes, err := strconv.Atoi(rawMinutes)
	if err != nil {
		return b.sendText(msg.Chat.ID, "Minutes must be a number, e.g. /log 25")
	}

	record, err := b.workspace.LogMinutes(ctx, videoID, minutes)
	switch {
	case errors.Is(err, service.ErrInvalidMinutes):
		return b.sendText(msg.Chat.ID, "Minutes must be positive.")
	case errors.Is(err, service.ErrUnknownVideo):
		return b.sendText(msg.Chat.ID, "That video is not in the learning path. See /videos.")
	case errors.Is(err, service.ErrStaleSnapshot):
		// The session is saved, only the cached view missed it.
		return b.sendHTML(msg.Chat.ID, formatLogged(videoID, record)+"\n⚠️ Stats may lag until the next reload.")
	case err != nil:
		return err
	}

	return b.sendHTML(msg.Chat.ID, formatLogged(videoID, record))
}

// handleTask adds an extra task for today: "/task lead Qualify the agency
// referral". The first word is taken as a category when it matches one.
func (b *Bot) handleTask(ctx context.Context, msg *tgbotapi.Message) error {
	args := strings.Fields(msg.CommandArguments())
	if len(args) == 0 {
		return b.sendText(msg.Chat.ID, "Usage: /task [category] <title>")
	}

	category := model.CategoryProject
	if len(args) > 1 && isTaskCategory(args[0]) {
		category = model.TaskCategory(args[0])
		args = args[1:]
	}

	task, err := b.workspace.AddTask(ctx, strings.Join(args, " "), category, model.PriorityMedium, false)
	if err != nil {
		return err
	}
	return b.sendText(msg.Chat.ID, fmt.Sprintf("➕ Added %q (%s).", task.Title, task.Category))
}

func isTaskCategory(raw string) bool {
	for _, category := range model.TaskCategories {
		if string(category) == raw {
			return true
		}
	}
	return false
}

// handleNote creates a learning note: "/note summary: docker networks ...".
func (b *Bot) handleNote(ctx context.Context, msg *tgbotapi.Message) error {
	content := strings.TrimSpace(msg.CommandArguments())
	if content == "" {
		return b.sendText(msg.Chat.ID, "Usage: /note <text>")
	}

	note, err := b.workspace.AddNote(ctx, model.NoteLearning, content, "", "", "")
	if err != nil {
		return err
	}
	return b.sendText(msg.Chat.ID, fmt.Sprintf("📝 Note saved (%s).", note.ID[:8]))
}

func (b *Bot) sendHelp(chatID int64) error {
	return b.sendHTML(chatID, formatHelp())
}

func (b *Bot) sendToday(ctx context.Context, chatID int64) error {
	if err := b.workspace.Reload(ctx); err != nil {
		return err
	}
	tasks := b.workspace.TodayTasks()
	progress := b.workspace.TodayProgress()
	noteCounts, err := b.workspace.TodayNoteCounts(ctx)
	if err != nil {
		b.log.Warn("load note counts", "error", err)
		noteCounts = nil
	}

	message := tgbotapi.NewMessage(chatID, formatToday(tasks, noteCounts, progress))
	message.ParseMode = tgbotapi.ModeHTML
	if keyboard := todayKeyboard(tasks); len(keyboard.InlineKeyboard) > 0 {
		message.ReplyMarkup = keyboard
	}
	_, err = b.api.Send(message)
	return err
}

func (b *Bot) sendChains(ctx context.Context, chatID int64) error {
	if err := b.workspace.Reload(ctx); err != nil {
		return err
	}
	return b.sendHTML(chatID, formatChains(b.workspace.DailyChains()))
}

func (b *Bot) sendWeek(ctx context.Context, chatID int64) error {
	if err := b.workspace.Reload(ctx); err != nil {
		return err
	}
	return b.sendHTML(chatID, formatWeek(b.workspace.Weekly()))
}

func (b *Bot) sendVideos(ctx context.Context, chatID int64) error {
	if err := b.workspace.Reload(ctx); err != nil {
		return err
	}
	snap := b.workspace.Snapshot()
	return b.sendHTML(chatID, formatVideos(b.workspace.LearningPath(), snap.Progress, b.workspace.NextVideo()))
}

// SendDailyDigest pushes the morning summary to the owner chat: routine,
// chain percentages and learning stats in one message.
func (b *Bot) SendDailyDigest(ctx context.Context) error {
	b.mu.Lock()
	chatID := b.ownerChatID
	b.mu.Unlock()
	if chatID == 0 {
		b.log.Warn("digest skipped, no owner chat yet")
		return nil
	}

	if err := b.workspace.Reload(ctx); err != nil {
		return err
	}

	noteCounts, err := b.workspace.TodayNoteCounts(ctx)
	if err != nil {
		b.log.Warn("load note counts", "error", err)
		noteCounts = nil
	}

	digest := formatDigest(
		b.workspace.TodayTasks(),
		noteCounts,
		b.workspace.TodayProgress(),
		b.workspace.DailyChains(),
		b.workspace.VideoStats(),
		b.workspace.NextVideo(),
	)
	if err := b.sendHTML(chatID, digest); err != nil {
		return err
	}
	observability.RecordDigestSent()
	return nil
}

func todayKeyboard(tasks []model.Task) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		label := truncateLabel(task.Title, 48)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("☑️ "+label, cbCompletePrefix+task.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// truncateLabel shortens a button label to max runes. Slicing by rune keeps
// the label valid UTF-8; the routine titles contain multibyte arrows.
func truncateLabel(label string, max int) string {
	runes := []rune(label)
	if len(runes) <= max {
		return label
	}
	return string(runes[:max-3]) + "..."
}

func (b *Bot) answerCallback(id, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, text)); err != nil {
		b.log.Warn("answer callback", "error", err)
	}
}

func (b *Bot) sendText(chatID int64, text string) error {
	message := tgbotapi.NewMessage(chatID, text)
	message.ReplyMarkup = menuKeyboard()
	_, err := b.api.Send(message)
	return err
}

func (b *Bot) sendHTML(chatID int64, text string) error {
	message := tgbotapi.NewMessage(chatID, text)
	message.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(message)
	return err
}

func menuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelToday),
			tgbotapi.NewKeyboardButton(menuLabelChains),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelWeek),
			tgbotapi.NewKeyboardButton(menuLabelVideos),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}
