package response

import (
	"time"

	"taller_jaison/internal/domain/receipt"
	"taller_jaison/internal/usecase"
)

type ReceiptResponse struct {
	Shop            string             `json:"shop"`
	OrderID         string             `json:"order_id"`
	EntryDate       time.Time          `json:"entry_date"`
	Status          string             `json:"status"`
	ClientName      string             `json:"client_name"`
	ClientPhone     string             `json:"client_phone"`
	ClientEmail     string             `json:"client_email"`
	Vehicle         string             `json:"vehicle"`
	VehicleFound    bool               `json:"vehicle_found"`
	Plate           string             `json:"plate"`
	Miles           string             `json:"miles"`
	Description     string             `json:"description"`
	WorkPerformed   string             `json:"work_performed"`
	Items           []LineItemResponse `json:"items"`
	DamagedParts    []string           `json:"damaged_parts"`
	InspectionNotes string             `json:"inspection_notes"`
	Subtotal        string             `json:"subtotal"`
	Tax             string             `json:"tax"`
	ApplyIVU        bool               `json:"apply_ivu"`
	Total           string             `json:"total"`
	Payments        []PaymentResponse  `json:"payments"`
	TotalPaid       string             `json:"total_paid"`
	Pending         string             `json:"pending"`
	FullyPaid       bool               `json:"fully_paid"`
	LastPaymentDate *time.Time         `json:"last_payment_date,omitempty"`
	Text            string             `json:"text"`
}

func FromReceipt(doc usecase.ReceiptDocument) ReceiptResponse {
	v := doc.View
	damaged := v.DamagedParts
	if damaged == nil {
		damaged = []string{}
	}
	return ReceiptResponse{
		Shop:            receipt.ShopName,
		OrderID:         v.OrderID,
		EntryDate:       v.EntryDate,
		Status:          v.StatusLabel,
		ClientName:      v.ClientName,
		ClientPhone:     v.ClientPhone,
		ClientEmail:     v.ClientEmail,
		Vehicle:         v.VehicleLabel,
		VehicleFound:    v.VehicleFound,
		Plate:           v.Plate,
		Miles:           v.Miles,
		Description:     v.Description,
		WorkPerformed:   v.WorkPerformed,
		Items:           FromLineItems(v.Items),
		DamagedParts:    damaged,
		InspectionNotes: v.InspectionNotes,
		Subtotal:        Money(v.Subtotal),
		Tax:             Money(v.Tax),
		ApplyIVU:        v.ApplyIVU,
		Total:           Money(v.Total),
		Payments:        FromPayments(v.Payments),
		TotalPaid:       Money(v.TotalPaid),
		Pending:         Money(v.Pending),
		FullyPaid:       v.FullyPaid,
		LastPaymentDate: v.LastPaymentDate,
		Text:            doc.Text,
	}
}

// GuestReceiptResponse is what the entry URL returns in guest mode.
type GuestReceiptResponse struct {
	Mode    string          `json:"mode"`
	Receipt ReceiptResponse `json:"receipt"`
}

type ShareLinksResponse struct {
	Token       string `json:"token"`
	URL         string `json:"url"`
	WhatsAppURL string `json:"whatsapp_url"`
	SMSURL      string `json:"sms_url"`
	MailtoURL   string `json:"mailto_url"`
}

func FromShareLinks(l usecase.ShareLinks) ShareLinksResponse {
	return ShareLinksResponse{Token: l.Token, URL: l.URL, WhatsAppURL: l.WhatsAppURL, SMSURL: l.SMSURL, MailtoURL: l.MailtoURL}
}

type SentShareResponse struct {
	Channel   string `json:"channel"`
	To        string `json:"to"`
	MessageID string `json:"message_id"`
	URL       string `json:"url"`
}

func FromSentShare(s usecase.SentShare) SentShareResponse {
	return SentShareResponse{Channel: string(s.Channel), To: s.To, MessageID: s.MessageID, URL: s.URL}
}
