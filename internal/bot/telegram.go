package bot

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Bot connects the Handler to the Telegram Bot API over long polling.
type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	log     zerolog.Logger
}

func New(token string, handler *Handler, log zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		handler: handler,
		log:     log.With().Str("bot", api.Self.UserName).Logger(),
	}, nil
}

// Run polls for updates until the context is cancelled. Each update is one
// independent, synchronous invocation.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	b.log.Info().Msg("Bot polling for updates")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" || msg.From == nil {
		return
	}

	log := b.log.With().
		Str("invocation_id", uuid.NewString()).
		Int64("chat_id", msg.Chat.ID).
		Str("command", msg.Command()).
		Logger()

	submitterID := strconv.FormatInt(msg.From.ID, 10)
	handle := msg.From.UserName
	if handle != "" && !strings.HasPrefix(handle, "@") {
		handle = "@" + handle
	}

	var reply string
	var err error

	switch msg.Command() {
	case "start":
		reply = b.handler.Start()
	case "ultimo":
		reply, err = b.handler.LastRecord(ctx)
	case "resumo":
		reply, err = b.handler.Summary(ctx, msg.CommandArguments())
	case "meus":
		reply, err = b.handler.MyRecords(ctx, submitterID)
	case "meus_resumo":
		reply, err = b.handler.MySummary(ctx, submitterID, msg.CommandArguments())
	case "p1":
		reply, err = b.handler.ProjectionGrowth(msg.CommandArguments())
	case "p2":
		reply, err = b.handler.ProjectionWithContribution(msg.CommandArguments())
	case "p3":
		reply, err = b.handler.ProjectionWithdrawHalf(msg.CommandArguments())
	case "":
		reply, err = b.handler.Register(ctx, submitterID, handle, msg.Text)
	default:
		// Unknown commands are ignored, matching how group chats behave.
		return
	}

	if err != nil {
		log.Warn().Err(err).Msg("Command failed")
		reply = RenderError(err)
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		log.Error().Err(err).Msg("Failed to send reply")
	}
}
