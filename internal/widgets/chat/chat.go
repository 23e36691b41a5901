package chat

import (
	"log/slog"
	"strings"
	"time"

	"threeclick/internal/domain"
)

const (
	greeting   = "Hello! How can I help you today?"
	handOffMsg = "I understand your question. Let me connect you with a human agent who can better assist you. Please hold for a moment..."
)

// cannedReply pairs a keyword with its response. Order matters: the first
// keyword found in the message wins.
type cannedReply struct {
	keyword  string
	response string
}

var cannedReplies = []cannedReply{
	{"pricing", "Our pricing plans start at $29/month. Would you like to know more about our different tiers?"},
	{"website", "Our website builder allows you to create a professional website in just 3 clicks. Would you like a demo?"},
	{"help", "I can help you with website creation, customization, and technical support. What specific assistance do you need?"},
	{"contact", "You can reach our support team at support@3clickwebsite.com or call us at (555) 123-4567."},
	{"feature", "We offer various features including mobile responsiveness, SEO optimization, and custom domains. Which feature would you like to know more about?"},
}

// Widget holds the transcript and answers messages from the keyword table.
type Widget struct {
	store  domain.TranscriptStore
	logger *slog.Logger
	now    func() time.Time

	open     bool
	messages []domain.ChatMessage
}

// New loads any persisted transcript and returns a closed widget. A store
// read failure starts an empty transcript.
func New(store domain.TranscriptStore, logger *slog.Logger) *Widget {
	w := &Widget{
		store:  store,
		logger: logger.With("component", "chat"),
		now:    time.Now,
	}
	msgs, err := store.LoadTranscript()
	if err != nil {
		w.logger.Warn("load transcript failed", "error", err)
		return w
	}
	w.messages = msgs
	return w
}

// Toggle opens or closes the chat window. Opening an empty transcript adds
// the greeting.
func (w *Widget) Toggle() {
	w.open = !w.open
	if w.open && len(w.messages) == 0 {
		w.append(greeting, domain.SenderAgent)
	}
}

// IsOpen reports whether the window is currently open.
func (w *Widget) IsOpen() bool { return w.open }

// Messages returns the transcript in order.
func (w *Widget) Messages() []domain.ChatMessage {
	out := make([]domain.ChatMessage, len(w.messages))
	copy(out, w.messages)
	return out
}

// Send records the user's message, answers it, persists the transcript and
// returns the reply. Blank messages are ignored.
func (w *Widget) Send(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	w.append(text, domain.SenderUser)
	reply := Reply(text)
	w.append(reply, domain.SenderAgent)

	if err := w.store.SaveTranscript(w.messages); err != nil {
		w.logger.Warn("save transcript failed", "error", err)
	}
	return reply, true
}

// Reply returns the canned response for the first table keyword contained
// in the message, matched case-insensitively, or the hand-off message.
func Reply(message string) string {
	lower := strings.ToLower(message)
	for _, c := range cannedReplies {
		if strings.Contains(lower, c.keyword) {
			return c.response
		}
	}
	return handOffMsg
}

func (w *Widget) append(text, sender string) {
	w.messages = append(w.messages, domain.ChatMessage{
		Text:      text,
		Sender:    sender,
		Timestamp: w.now(),
	})
}
