package telegram

import "fmt"

// ErrSendFailure indicates the bot could not deliver a message to the chat.
var ErrSendFailure = fmt.Errorf("failed to send telegram message")

// Client defines an interface for sending messages via a Telegram bot.
// This helps in decoupling the application logic from the specific bot library.
type Client interface {
	SendMessage(recipientChatID int64, text string) error
}
