package usecase

import (
	"context"
	"errors"
	"strings"

	"taller_jaison/internal/domain/receipt"
	"taller_jaison/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidShareChannel    = errors.New("invalid share channel")
	ErrMessagingNotConfigured = errors.New("messaging provider not configured")
	ErrMissingClientPhone     = errors.New("client has no phone number")
)

// ShareLinks is everything needed to hand a receipt to the client.
type ShareLinks struct {
	Token       string
	URL         string
	WhatsAppURL string
	SMSURL      string
	MailtoURL   string
}

type ReceiptDocument struct {
	Snapshot receipt.Snapshot
	View     receipt.View
	Text     string
}

type SentShare struct {
	Channel   interfaces.MessageChannel
	To        string
	MessageID string
	URL       string
}

// IReceiptUseCase builds shareable receipts from stored orders and opens
// shared ones without touching any store.
type IReceiptUseCase interface {
	Receipt(ctx context.Context, orderID string) (ReceiptDocument, error)
	ShareLink(ctx context.Context, orderID string) (ShareLinks, error)
	OpenShared(token string) (ReceiptDocument, error)
	SendShare(ctx context.Context, orderID string, channel interfaces.MessageChannel) (SentShare, error)
}

type ReceiptUseCase struct {
	orders  IServiceOrderUseCase
	sender  interfaces.IMessageSender
	baseURL string
	logger  *zap.Logger
}

var _ IReceiptUseCase = (*ReceiptUseCase)(nil)

func NewReceiptUseCase(orders IServiceOrderUseCase, sender interfaces.IMessageSender, baseURL string, logger *zap.Logger) *ReceiptUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReceiptUseCase{orders: orders, sender: sender, baseURL: baseURL, logger: logger}
}

func (u *ReceiptUseCase) snapshot(ctx context.Context, orderID string) (receipt.Snapshot, error) {
	details, err := u.orders.GetDetails(ctx, orderID)
	if err != nil {
		return receipt.Snapshot{}, err
	}
	if !details.ClientFound {
		return receipt.Snapshot{}, ErrClientNotFound
	}
	return receipt.Snapshot{Order: details.Order, Client: details.Client}, nil
}

func newReceiptDocument(s receipt.Snapshot) ReceiptDocument {
	view := receipt.NewView(s)
	return ReceiptDocument{Snapshot: s, View: view, Text: receipt.FormatText(view)}
}

func (u *ReceiptUseCase) Receipt(ctx context.Context, orderID string) (ReceiptDocument, error) {
	s, err := u.snapshot(ctx, orderID)
	if err != nil {
		return ReceiptDocument{}, err
	}
	return newReceiptDocument(s), nil
}

func (u *ReceiptUseCase) ShareLink(ctx context.Context, orderID string) (ShareLinks, error) {
	s, err := u.snapshot(ctx, orderID)
	if err != nil {
		return ShareLinks{}, err
	}
	token, err := receipt.Encode(s)
	if err != nil {
		return ShareLinks{}, err
	}
	link := receipt.ShareLink(u.baseURL, token)
	plate := ""
	if v, ok := s.Client.FindVehicle(s.Order.VehicleID); ok {
		plate = v.Plate
	}
	u.logger.Info("[receipt][usecase] share link built", zap.String("order_id", s.Order.ID), zap.Int("token_len", len(token)))
	return ShareLinks{
		Token:       token,
		URL:         link,
		WhatsAppURL: receipt.WhatsAppURL(s.Client.Phone, s.Client.Name, link),
		SMSURL:      receipt.SMSURL(s.Client.Phone, s.Client.Name, link),
		MailtoURL:   receipt.MailtoURL(s.Client.Email, s.Client.Name, plate, link),
	}, nil
}

// OpenShared decodes a guest link. It only depends on the token.
func (u *ReceiptUseCase) OpenShared(token string) (ReceiptDocument, error) {
	s, err := receipt.Decode(token)
	if err != nil {
		u.logger.Warn("[receipt][usecase] shared link rejected", zap.Error(err))
		return ReceiptDocument{}, err
	}
	return newReceiptDocument(s), nil
}

func (u *ReceiptUseCase) SendShare(ctx context.Context, orderID string, channel interfaces.MessageChannel) (SentShare, error) {
	channel = interfaces.MessageChannel(strings.ToLower(strings.TrimSpace(string(channel))))
	if channel != interfaces.MessageChannelSMS && channel != interfaces.MessageChannelWhatsApp {
		return SentShare{}, ErrInvalidShareChannel
	}
	if u.sender == nil {
		return SentShare{}, ErrMessagingNotConfigured
	}
	s, err := u.snapshot(ctx, orderID)
	if err != nil {
		return SentShare{}, err
	}
	if strings.TrimSpace(s.Client.Phone) == "" {
		return SentShare{}, ErrMissingClientPhone
	}
	token, err := receipt.Encode(s)
	if err != nil {
		return SentShare{}, err
	}
	link := receipt.ShareLink(u.baseURL, token)

	body := receipt.SMSText(s.Client.Name, link)
	if channel == interfaces.MessageChannelWhatsApp {
		body = receipt.WhatsAppText(s.Client.Name, link)
	}
	id, err := u.sender.SendMessage(ctx, channel, s.Client.Phone, body)
	if err != nil {
		u.logger.Error("[receipt][usecase] share send failed", zap.String("order_id", s.Order.ID), zap.String("channel", string(channel)), zap.Error(err))
		return SentShare{}, err
	}
	u.logger.Info("[receipt][usecase] share sent", zap.String("order_id", s.Order.ID), zap.String("channel", string(channel)), zap.String("message_id", id))
	return SentShare{Channel: channel, To: s.Client.Phone, MessageID: id, URL: link}, nil
}
