package bot

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"steady-compass/internal/domain"

	tele "gopkg.in/telebot.v3"
)

type messageSender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// AlertDispatcher pushes pressure warnings to subscribed chats.
type AlertDispatcher struct {
	sender messageSender

	mu          sync.RWMutex
	subscribers map[int64]struct{}
}

func NewAlertDispatcher(sender messageSender) *AlertDispatcher {
	return &AlertDispatcher{
		sender:      sender,
		subscribers: make(map[int64]struct{}),
	}
}

func (d *AlertDispatcher) Subscribe(chatID int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.subscribers[chatID]; exists {
		return false
	}
	d.subscribers[chatID] = struct{}{}
	return true
}

func (d *AlertDispatcher) Unsubscribe(chatID int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.subscribers[chatID]; !exists {
		return false
	}
	delete(d.subscribers, chatID)
	return true
}

func (d *AlertDispatcher) IsSubscribed(chatID int64) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, exists := d.subscribers[chatID]
	return exists
}

func (d *AlertDispatcher) SubscriberCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.subscribers)
}

// Subscribers returns the subscribed chat ids in ascending order.
func (d *AlertDispatcher) Subscribers() []int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	chatIDs := make([]int64, 0, len(d.subscribers))
	for chatID := range d.subscribers {
		chatIDs = append(chatIDs, chatID)
	}
	sort.Slice(chatIDs, func(i, j int) bool { return chatIDs[i] < chatIDs[j] })
	return chatIDs
}

// NotifyPressure sends a pressure warning to a single chat.
func (d *AlertDispatcher) NotifyPressure(ctx context.Context, chatID int64, summary domain.CurveSummary) error {
	_ = ctx
	if d == nil || d.sender == nil {
		return nil
	}
	if _, err := d.sender.Send(&tele.Chat{ID: chatID}, formatPressureAlert(summary)); err != nil {
		return fmt.Errorf("send pressure alert to chat %d: %w", chatID, err)
	}
	return nil
}

func formatPressureAlert(summary domain.CurveSummary) string {
	lines := []string{
		"⚠️ Pressure alert",
		fmt.Sprintf("Average: %.2f  Peak: %.2f", summary.AverageStress, summary.PeakStress),
		fmt.Sprintf("Trend: %s", summary.Trend),
		summary.Status,
	}
	return strings.Join(lines, "\n")
}

func parseAlertMode(args []string) (string, error) {
	if len(args) == 0 {
		return "status", nil
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "on":
		return "on", nil
	case "off":
		return "off", nil
	case "status":
		return "status", nil
	default:
		return "", fmt.Errorf("invalid mode")
	}
}
