package session

import (
	"errors"

	"storefront/internal/models"
)

// ErrChatBusy is returned while an assistant call is outstanding; the
// widget allows one in-flight request per session.
var ErrChatBusy = errors.New("assistant request already in flight")

// EnsureGreeting seeds the transcript with the assistant's opening message.
// Idempotent once the transcript has any content.
func (s *Session) EnsureGreeting(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.chat) == 0 {
		s.chat = append(s.chat, models.Message{Sender: models.SenderAssistant, Text: text})
	}
}

// Messages returns a snapshot copy of the transcript.
func (s *Session) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Message, len(s.chat))
	copy(out, s.chat)
	return out
}

// BeginChat appends the user message and marks a request in flight. The
// returned generation must be handed back to FinishChat; it exists so a
// reply that arrives after the session's chat state moved on is discarded
// instead of appended.
func (s *Session) BeginChat(userText string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.chatBusy {
		return 0, ErrChatBusy
	}
	s.chatBusy = true
	s.chatGen++
	s.chat = append(s.chat, models.Message{Sender: models.SenderUser, Text: userText})
	return s.chatGen, nil
}

// FinishChat appends the assistant reply for the given generation and
// releases the in-flight guard. A stale generation is dropped silently.
func (s *Session) FinishChat(gen uint64, replyText string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if gen != s.chatGen {
		return false
	}
	s.chatBusy = false
	s.chat = append(s.chat, models.Message{Sender: models.SenderAssistant, Text: replyText})
	return true
}
