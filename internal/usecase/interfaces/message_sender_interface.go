package interfaces

import "context"

type MessageChannel string

const (
	MessageChannelSMS      MessageChannel = "sms"
	MessageChannelWhatsApp MessageChannel = "whatsapp"
)

// IMessageSender abstracts the SMS/WhatsApp provider used to send receipt
// links. It returns the provider message id.
type IMessageSender interface {
	SendMessage(ctx context.Context, channel MessageChannel, to, body string) (string, error)
}
