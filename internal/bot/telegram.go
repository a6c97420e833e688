package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"steady-compass/internal/domain"

	tele "gopkg.in/telebot.v3"
)

type WellnessQuerier interface {
	RecordCheckIn(ctx context.Context, userID, description string, occurredAt time.Time) (domain.CheckIn, error)
	RecentCurve(ctx context.Context, userID string) (domain.PressureCurve, error)
	RecentScore(ctx context.Context, userID string) (domain.ResilienceScore, error)
	AnalyzeEvent(ctx context.Context, text string) domain.EventSentiment
	SuggestForEvent(ctx context.Context, description string) []domain.SuggestionItem
}

func StartTelegramBot(wellness WellnessQuerier) *AlertDispatcher {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return nil
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}
	alerts := NewAlertDispatcher(b)

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/checkin", func(c tele.Context) error {
		if wellness == nil {
			return c.Send("Journal unavailable")
		}
		text := strings.TrimSpace(c.Message().Payload)
		if text == "" {
			return c.Send("Usage: /checkin <what happened>\nExample: /checkin 明天要交项目周报")
		}

		checkIn, err := wellness.RecordCheckIn(context.Background(), chatUserID(c), text, time.Time{})
		if err != nil {
			return c.Send(fmt.Sprintf("Error recording check-in: %v", err))
		}
		return c.Send(formatCheckIn(checkIn))
	})

	b.Handle("/pressure", func(c tele.Context) error {
		if wellness == nil {
			return c.Send("Journal unavailable")
		}
		curve, err := wellness.RecentCurve(context.Background(), chatUserID(c))
		if err != nil {
			return c.Send(fmt.Sprintf("Error building pressure curve: %v", err))
		}
		if len(curve.DataPoints) == 0 {
			return c.Send("No check-ins recorded yet. Use /checkin to start your journal.")
		}
		return c.Send(formatCurve(curve))
	})

	b.Handle("/score", func(c tele.Context) error {
		if wellness == nil {
			return c.Send("Journal unavailable")
		}
		score, err := wellness.RecentScore(context.Background(), chatUserID(c))
		if err != nil {
			return c.Send(fmt.Sprintf("Error calculating score: %v", err))
		}
		return c.Send(formatScore(score))
	})

	b.Handle("/suggest", func(c tele.Context) error {
		if wellness == nil {
			return c.Send("Journal unavailable")
		}
		text := strings.TrimSpace(c.Message().Payload)
		if text == "" {
			return c.Send("Usage: /suggest <event>\nExample: /suggest 明天下午3点开会")
		}
		sentiment := wellness.AnalyzeEvent(context.Background(), text)
		suggestions := wellness.SuggestForEvent(context.Background(), text)
		return c.Send(formatSuggestions(sentiment, suggestions))
	})

	b.Handle("/alerts", func(c tele.Context) error {
		chat := c.Chat()
		if chat == nil {
			return c.Send("Unable to detect chat")
		}

		mode, err := parseAlertMode(c.Args())
		if err != nil {
			return c.Send("Usage: /alerts on | /alerts off | /alerts status")
		}

		switch mode {
		case "on":
			if alerts.Subscribe(chat.ID) {
				return c.Send("Pressure alerts enabled for this chat.")
			}
			return c.Send("Pressure alerts are already enabled for this chat.")
		case "off":
			if alerts.Unsubscribe(chat.ID) {
				return c.Send("Pressure alerts disabled for this chat.")
			}
			return c.Send("Pressure alerts are already disabled for this chat.")
		default:
			if alerts.IsSubscribed(chat.ID) {
				return c.Send("Alerts status: ON")
			}
			return c.Send("Alerts status: OFF")
		}
	})

	log.Println("Telegram bot started")
	go b.Start()
	return alerts
}

func chatUserID(c tele.Context) string {
	chat := c.Chat()
	if chat == nil {
		return ""
	}
	return strconv.FormatInt(chat.ID, 10)
}

func formatCheckIn(checkIn domain.CheckIn) string {
	return fmt.Sprintf(
		"%s Recorded: %s\nStress: %s (%.1f)\nDimension: %s",
		checkIn.StressLevel.Emoji(),
		checkIn.Description,
		checkIn.StressLevel,
		checkIn.StressScore,
		checkIn.Dimension,
	)
}

func formatCurve(curve domain.PressureCurve) string {
	predictions := make([]string, 0, len(curve.Predictions))
	for _, p := range curve.Predictions {
		predictions = append(predictions, fmt.Sprintf("%.2f", p))
	}
	return fmt.Sprintf(
		"Pressure over the last days\nPoints: %d\nAverage: %.2f\nPeak: %.2f\nTrend: %s\nNext: %s",
		len(curve.DataPoints),
		curve.AverageStress,
		curve.PeakStress,
		curve.Trend,
		strings.Join(predictions, " "),
	)
}

func formatScore(score domain.ResilienceScore) string {
	lines := []string{
		fmt.Sprintf("Resilience score: %.1f (%s)", score.OverallScore, score.Level),
	}
	lines = append(lines, score.Suggestions...)
	return strings.Join(lines, "\n")
}

func formatSuggestions(sentiment domain.EventSentiment, suggestions []domain.SuggestionItem) string {
	lines := []string{
		fmt.Sprintf("%s Stress level: %s (%.1f)", sentiment.Emoji, sentiment.StressLevel, sentiment.StressScore),
	}
	lastCategory := ""
	for _, item := range suggestions {
		if item.Category != lastCategory {
			lines = append(lines, item.Category+":")
			lastCategory = item.Category
		}
		lines = append(lines, "- "+item.Suggestion)
	}
	return strings.Join(lines, "\n")
}
