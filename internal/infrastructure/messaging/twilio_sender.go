// Package messaging sends receipt links to clients over SMS and WhatsApp
// through Twilio.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taller_jaison/internal/usecase/interfaces"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

var (
	ErrInvalidPhoneNumber  = errors.New("invalid phone number")
	ErrSenderNotConfigured = errors.New("no sender number configured for channel")
	ErrUnsupportedChannel  = errors.New("unsupported message channel")
	ErrMessageSendFailed   = errors.New("message send failed")
)

const (
	whatsAppPrefix     = "whatsapp:"
	defaultCountryCode = "1"
)

// messageCreator is the slice of the Twilio REST API the sender needs.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type TwilioConfig struct {
	AccountSID         string
	AuthToken          string
	PhoneNumber        string
	WhatsAppNumber     string
	DefaultCountryCode string
}

type TwilioSender struct {
	api            messageCreator
	phoneNumber    string
	whatsAppNumber string
	countryCode    string
	logger         *zap.Logger
}

var _ interfaces.IMessageSender = (*TwilioSender)(nil)

func NewTwilioSender(cfg TwilioConfig, logger *zap.Logger) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return newTwilioSender(client.Api, cfg, logger)
}

func newTwilioSender(api messageCreator, cfg TwilioConfig, logger *zap.Logger) *TwilioSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	cc := strings.TrimPrefix(strings.TrimSpace(cfg.DefaultCountryCode), "+")
	if cc == "" {
		cc = defaultCountryCode
	}
	return &TwilioSender{
		api:            api,
		phoneNumber:    strings.TrimSpace(cfg.PhoneNumber),
		whatsAppNumber: strings.TrimPrefix(strings.TrimSpace(cfg.WhatsAppNumber), whatsAppPrefix),
		countryCode:    cc,
		logger:         logger,
	}
}

func (s *TwilioSender) SendMessage(ctx context.Context, channel interfaces.MessageChannel, to, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	number, err := ToE164(to, s.countryCode)
	if err != nil {
		return "", err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)
	switch channel {
	case interfaces.MessageChannelSMS:
		if s.phoneNumber == "" {
			return "", fmt.Errorf("%w: %s", ErrSenderNotConfigured, channel)
		}
		params.SetTo(number)
		params.SetFrom(s.phoneNumber)
	case interfaces.MessageChannelWhatsApp:
		if s.whatsAppNumber == "" {
			return "", fmt.Errorf("%w: %s", ErrSenderNotConfigured, channel)
		}
		params.SetTo(whatsAppPrefix + number)
		params.SetFrom(whatsAppPrefix + s.whatsAppNumber)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedChannel, channel)
	}

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		s.logger.Error("[messaging][twilio] send failed", zap.String("channel", string(channel)), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrMessageSendFailed, err)
	}
	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	s.logger.Info("[messaging][twilio] message sent", zap.String("channel", string(channel)), zap.String("sid", sid))
	return sid, nil
}

// ToE164 normalizes a stored phone to +<country><number>. Ten-digit local
// numbers get countryCode prepended; numbers already carrying a leading "+"
// keep their own country code.
func ToE164(phone, countryCode string) (string, error) {
	raw := strings.TrimSpace(phone)
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	switch {
	case len(digits) < 10 || len(digits) > 15:
		return "", fmt.Errorf("%w: %q", ErrInvalidPhoneNumber, phone)
	case strings.HasPrefix(raw, "+"):
		return "+" + digits, nil
	case len(digits) == 10:
		return "+" + countryCode + digits, nil
	default:
		return "+" + digits, nil
	}
}
