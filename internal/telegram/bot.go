package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"ai-trip-planner/internal/config"
	"ai-trip-planner/internal/flow"
	"ai-trip-planner/internal/metrics"
	"ai-trip-planner/internal/planner"
	"ai-trip-planner/internal/render"
	"ai-trip-planner/internal/trip"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot wraps the Telegram API around the trip planning engine.
type Bot struct {
	api          *tgbotapi.BotAPI
	gen          planner.Generator
	metricsStore *metrics.Store
	cfg          *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, gen planner.Generator, metricsStore *metrics.Store) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	webhookURL := cfg.TelegramWebhookURL
	wh, _ := tgbotapi.NewWebhook(webhookURL)
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", webhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{
		api:          bot,
		gen:          gen,
		metricsStore: metricsStore,
		cfg:          cfg,
	}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.Message == nil {
		return
	}

	if b.cfg.TelegramAllowUserID != 0 && update.Message.From.ID != b.cfg.TelegramAllowUserID {
		log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	switch {
	case msg.Text == "/start" || msg.Text == "/help":
		b.send(msg.Chat.ID, usageText)
	case msg.Text == "/metrics":
		b.handleMetricsRequest(msg)
	default:
		b.handlePlanRequest(msg)
	}
}

const usageText = `Send a trip request as pipe-separated fields:

destination | start | end | budget | travelers | interests

Example:
Goa | 2025-03-01 | 2025-03-05 | 30000 | 2 | Beach, Food

Travelers and interests are optional.`

func (b *Bot) handleMetricsRequest(msg *tgbotapi.Message) {
	sum := b.metricsStore.Summary()
	text := fmt.Sprintf("📊 *Session Metrics*\nAttempts: %d\nFallbacks: %d\nFailures: %d\nAvg time: %dms",
		sum.Attempts, sum.Fallbacks, sum.Failures, sum.AvgLatencyMS)
	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ParseMode = "Markdown"
	b.api.Send(reply)
}

func (b *Bot) handlePlanRequest(msg *tgbotapi.Message) {
	raw, err := ParseMessage(msg.Text)
	if err != nil {
		b.send(msg.Chat.ID, fmt.Sprintf("❌ %v\n\n%s", err, usageText))
		return
	}

	replyMsg := tgbotapi.NewMessage(msg.Chat.ID, "✈️ *Planning your trip...*")
	replyMsg.ParseMode = "Markdown"
	sentMsg, err := b.api.Send(replyMsg)
	if err != nil {
		log.Printf("Failed to send initial reply: %v", err)
		return
	}

	// Each message gets its own controller so concurrent chats never
	// supersede one another.
	controller := flow.NewController(b.gen)
	controller.SetObserver(func(snap flow.Snapshot) {
		if snap.State != flow.StateInProgress || len(snap.AgentLog) == 0 {
			return
		}
		last := snap.AgentLog[len(snap.AgentLog)-1]
		edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sentMsg.MessageID, render.Event(last))
		b.api.Send(edit)
	})

	controller.UpdateDraft(raw)

	started := time.Now()
	done, err := controller.Submit(context.Background())
	if err != nil {
		var verr *trip.ValidationError
		text := fmt.Sprintf("❌ %v", err)
		if errors.As(err, &verr) {
			text = "❌ Invalid request:\n" + formatValidationError(verr)
		}
		edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sentMsg.MessageID, text)
		b.api.Send(edit)
		return
	}

	snap, ok := <-done
	if !ok {
		return
	}

	b.metricsStore.Record(metrics.AttemptMetric{
		Destination:  snap.Request.Destination,
		Backend:      string(b.cfg.Backend),
		LatencyMS:    time.Since(started).Milliseconds(),
		UsedFallback: snap.FallbackUsed,
	})

	final := render.Itinerary(snap.Itinerary, snap.Notice)
	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sentMsg.MessageID, final)
	b.api.Send(edit)
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func formatValidationError(verr *trip.ValidationError) string {
	fields := make([]string, 0, len(verr.Fields))
	for field := range verr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, fmt.Sprintf("• %s: %s", field, verr.Fields[field]))
	}
	return strings.Join(lines, "\n")
}
