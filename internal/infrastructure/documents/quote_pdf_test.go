package documents

import (
	"bytes"
	"testing"
	"time"

	"pannel_pintura/internal/domain/entities"
	"pannel_pintura/internal/domain/pricing"
)

func TestQuotePDF(t *testing.T) {
	in := entities.QuoteInput{AreaSquareMeters: 100, RoomCount: 1, ContactName: "Ana", ContactPhone: "77204408"}
	res, err := pricing.ComputeQuote(in, entities.DefaultRateTable())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	for name, d := range map[string]QuoteDocument{
		"priced":   {Input: in, Result: res, Locale: pricing.DefaultLocale, GeneratedAt: time.Now()},
		"no price": {Input: entities.QuoteInput{}, Result: entities.QuoteResult{}, Locale: pricing.DefaultLocale, GeneratedAt: time.Now()},
	} {
		t.Run(name, func(t *testing.T) {
			b, err := QuotePDF(d)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.HasPrefix(b, []byte("%PDF")) {
				t.Fatalf("expected a PDF document, got %q", b[:min(len(b), 8)])
			}
		})
	}
}
