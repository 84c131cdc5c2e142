package telegram

// Sender is the outbound message transport, keyed by the external chat
// identity.
type Sender interface {
	SendMessage(chatID int64, text string) error
}
