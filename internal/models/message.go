package models

// Chat message senders.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message is one entry in the style-assistant transcript.
type Message struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}
