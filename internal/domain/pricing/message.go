package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"pannel_pintura/internal/domain/entities"
)

const (
	pendingPriceText = "por definir"
	greetingText     = "¡Hola! Me interesa conocer más sobre sus servicios de pintura."
)

// RenderOutboundMessage renders the quote request sent through the messaging
// deep link and returns it percent-encoded.
//
// Field order and labels are fixed. An invalid result never shows a price.
func RenderOutboundMessage(input entities.QuoteInput, result entities.QuoteResult) string {
	return EncodeURIComponent(composeQuoteMessage(input, result))
}

func composeQuoteMessage(input entities.QuoteInput, result entities.QuoteResult) string {
	in := input.WithDefaults()

	price := pendingPriceText
	if result.IsValid {
		price = "Bs. " + strconv.FormatInt(result.TotalPrice, 10)
	}

	var b strings.Builder
	b.WriteString("¡Hola! Me interesa solicitar una cotización de pintura.\n\n")
	b.WriteString("*Detalles del proyecto:*\n")
	fmt.Fprintf(&b, "• Tipo: %s\n", in.ProjectType.Label())
	fmt.Fprintf(&b, "• Área: %s m²\n", formatNumber(in.AreaSquareMeters))
	fmt.Fprintf(&b, "• Habitaciones: %d\n", in.RoomCount)
	fmt.Fprintf(&b, "• Acabado: %s\n", in.FinishTier.Label())
	fmt.Fprintf(&b, "• Estado actual: %s\n", in.WallCondition.Label())
	fmt.Fprintf(&b, "• Urgencia: %s\n\n", in.Urgency.Label())
	fmt.Fprintf(&b, "*Cotización estimada:* %s\n\n", price)
	b.WriteString("*Datos de contacto:*\n")
	fmt.Fprintf(&b, "• Nombre: %s\n", in.ContactName)
	fmt.Fprintf(&b, "• Teléfono: %s\n\n", in.ContactPhone)
	b.WriteString("Me gustaría coordinar una visita técnica para confirmar los detalles.")
	return b.String()
}

// GreetingMessage is the percent-encoded text of the generic "contact us" link.
func GreetingMessage() string {
	return EncodeURIComponent(greetingText)
}

// DeepLink builds https://<host>/<recipient>?text=<encodedText>. The recipient is
// configuration and is not validated here.
func DeepLink(host, recipient, encodedText string) string {
	return "https://" + host + "/" + recipient + "?text=" + encodedText
}

// EncodeURIComponent escapes s the way browsers do for a URI component: every
// byte except A-Z a-z 0-9 and - _ . ! ~ * ' ( ) becomes %XX.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isURIComponentSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
