package pricing

import (
	"net/url"
	"strings"
	"testing"

	"pannel_pintura/internal/domain/entities"
)

func TestRenderOutboundMessage(t *testing.T) {
	in := entities.QuoteInput{
		ProjectType:      entities.ProjectTypeExterior,
		AreaSquareMeters: 50,
		FinishTier:       entities.FinishTierLuxury,
		RoomCount:        3,
		WallCondition:    entities.WallConditionPoor,
		Urgency:          entities.UrgencyUrgent,
		ContactName:      "María José & Cía",
		ContactPhone:     "+591 70123456",
	}
	res, err := ComputeQuote(in, entities.DefaultRateTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	encoded := RenderOutboundMessage(in, res)
	if strings.ContainsAny(encoded, " \n&+?#") {
		t.Fatalf("message is not fully percent-encoded: %q", encoded)
	}

	decoded, err := url.PathUnescape(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	for _, want := range []string{"11773", "María José & Cía", "+591 70123456"} {
		if !strings.Contains(decoded, want) {
			t.Fatalf("decoded message missing %q:\n%s", want, decoded)
		}
	}

	wantLines := []string{
		"¡Hola! Me interesa solicitar una cotización de pintura.",
		"",
		"*Detalles del proyecto:*",
		"• Tipo: Pintura Exterior",
		"• Área: 50 m²",
		"• Habitaciones: 3",
		"• Acabado: Lujo",
		"• Estado actual: Malo",
		"• Urgencia: Urgente",
		"",
		"*Cotización estimada:* Bs. 11773",
		"",
		"*Datos de contacto:*",
		"• Nombre: María José & Cía",
		"• Teléfono: +591 70123456",
		"",
		"Me gustaría coordinar una visita técnica para confirmar los detalles.",
	}
	if got := strings.Split(decoded, "\n"); strings.Join(got, "\n") != strings.Join(wantLines, "\n") {
		t.Fatalf("unexpected message:\n%s", decoded)
	}
}

func TestRenderOutboundMessage_InvalidResultHasNoPrice(t *testing.T) {
	in := entities.QuoteInput{ContactName: "Ana", ContactPhone: "7000"}
	res, err := ComputeQuote(in, entities.DefaultRateTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := url.PathUnescape(RenderOutboundMessage(in, res))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(decoded, "*Cotización estimada:* por definir") {
		t.Fatalf("expected pending price, got:\n%s", decoded)
	}
	if strings.Contains(decoded, "Bs. 0") {
		t.Fatalf("zero must not be rendered as a quote:\n%s", decoded)
	}
}

func TestEncodeURIComponent(t *testing.T) {
	cases := map[string]string{
		"abcXYZ019": "abcXYZ019",
		"-_.!~*'()": "-_.!~*'()",
		"a b":       "a%20b",
		"a+b=c&d":   "a%2Bb%3Dc%26d",
		"¡Hola!":    "%C2%A1Hola!",
		"m²\n":      "m%C2%B2%0A",
		"/?#[]@":    "%2F%3F%23%5B%5D%40",
	}
	for in, want := range cases {
		if got := EncodeURIComponent(in); got != want {
			t.Fatalf("EncodeURIComponent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDeepLinkAndGreeting(t *testing.T) {
	link := DeepLink("wa.me", "59177204408", GreetingMessage())
	if !strings.HasPrefix(link, "https://wa.me/59177204408?text=") {
		t.Fatalf("unexpected link: %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := u.Query().Get("text"); got != "¡Hola! Me interesa conocer más sobre sus servicios de pintura." {
		t.Fatalf("unexpected text: %q", got)
	}
}
