package receipt

import (
	"fmt"
	"net/url"
	"strings"
)

// ShareLink builds the guest URL that opens the receipt from the token alone.
func ShareLink(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/?r=" + token
}

func WhatsAppText(clientName, link string) string {
	return fmt.Sprintf("*%s*\nHola %s, ve tu recibo aquí:\n%s", ShopName, clientName, link)
}

func SMSText(clientName, link string) string {
	return fmt.Sprintf("%s: Hola %s, ve tu recibo aqui: %s", ShopName, clientName, link)
}

func EmailSubject(plate string) string {
	return fmt.Sprintf("Recibo de Servicio - %s", plate)
}

func EmailBody(clientName, link string) string {
	return fmt.Sprintf("Hola %s,\n\nPuede ver su recibo de servicio aquí:\n%s\n\n%s", clientName, link, ShopName)
}

// WhatsAppURL opens a chat with the given phone (digits only) prefilled with
// the receipt greeting.
func WhatsAppURL(phone, clientName, link string) string {
	return "https://wa.me/" + digits(phone) + "?text=" + escapeComponent(WhatsAppText(clientName, link))
}

func SMSURL(phone, clientName, link string) string {
	return "sms:" + digits(phone) + "?body=" + escapeComponent(SMSText(clientName, link))
}

func MailtoURL(email, clientName, plate, link string) string {
	return "mailto:" + strings.TrimSpace(email) +
		"?subject=" + escapeComponent(EmailSubject(plate)) +
		"&body=" + escapeComponent(EmailBody(clientName, link))
}

// escapeComponent percent-encodes spaces as %20 so the texts survive
// clients that do not treat "+" as a space.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
