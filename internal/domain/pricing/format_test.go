package pricing

import (
	"strings"
	"testing"

	"pannel_pintura/internal/domain/entities"

	"golang.org/x/text/language"
)

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(1234567, language.English); got != "Bs. 1,234,567" {
		t.Fatalf("unexpected english format: %q", got)
	}

	got := FormatPrice(1234567, DefaultLocale)
	if !strings.HasPrefix(got, "Bs. ") || strings.Contains(got, ",") {
		t.Fatalf("unexpected spanish format: %q", got)
	}
}

func TestPriceLabel(t *testing.T) {
	if got := PriceLabel(entities.QuoteResult{}, DefaultLocale); got != Placeholder {
		t.Fatalf("expected placeholder, got %q", got)
	}

	res := entities.QuoteResult{IsValid: true, TotalPrice: 3500}
	if got := PriceLabel(res, language.English); got != "Bs. 3,500" {
		t.Fatalf("unexpected label: %q", got)
	}
}
