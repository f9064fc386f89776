package usecase

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"pannel_pintura/internal/domain/entities"
)

func newQuoteUseCase(t *testing.T) *QuoteUseCase {
	t.Helper()
	uc, err := NewQuoteUseCase(entities.DefaultRateTable(), "wa.me", "59177204408")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return uc
}

func TestNewQuoteUseCase_RejectsGaps(t *testing.T) {
	table := entities.DefaultRateTable()
	delete(table.Room, 3)
	if _, err := NewQuoteUseCase(table, "wa.me", "1"); !errors.Is(err, entities.ErrConfigurationGap) {
		t.Fatalf("expected ErrConfigurationGap, got %v", err)
	}
}

func TestQuoteUseCase_Compute(t *testing.T) {
	uc := newQuoteUseCase(t)
	res, err := uc.Compute(entities.QuoteInput{AreaSquareMeters: 100, RoomCount: 1})
	if err != nil || res.TotalPrice != 3500 || !res.IsValid {
		t.Fatalf("unexpected result %+v, %v", res, err)
	}
	if uc.Rates().Base[entities.ProjectTypeExterior][entities.FinishTierLuxury] != 105 {
		t.Fatalf("unexpected rates")
	}
}

func TestQuoteUseCase_QuoteLink(t *testing.T) {
	uc := newQuoteUseCase(t)

	t.Run("missing contact data", func(t *testing.T) {
		for _, in := range []entities.QuoteInput{
			{AreaSquareMeters: 10, ContactPhone: "7"},
			{AreaSquareMeters: 10, ContactName: "Ana", ContactPhone: "  "},
		} {
			if _, _, err := uc.QuoteLink(in); !errors.Is(err, ErrMissingContactData) {
				t.Fatalf("expected ErrMissingContactData, got %v", err)
			}
		}
	})

	t.Run("no area", func(t *testing.T) {
		_, res, err := uc.QuoteLink(entities.QuoteInput{ContactName: "Ana", ContactPhone: "7"})
		if !errors.Is(err, ErrIncompleteQuote) || res.IsValid {
			t.Fatalf("expected ErrIncompleteQuote, got %v", err)
		}
	})

	t.Run("link", func(t *testing.T) {
		link, res, err := uc.QuoteLink(entities.QuoteInput{AreaSquareMeters: 100, RoomCount: 1, ContactName: "Ana", ContactPhone: "77204408"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		prefix := "https://wa.me/59177204408?text="
		if !strings.HasPrefix(link, prefix) {
			t.Fatalf("unexpected link %s", link)
		}
		text, err := url.QueryUnescape(strings.TrimPrefix(link, prefix))
		if err != nil {
			t.Fatalf("unescape: %v", err)
		}
		if res.TotalPrice != 3500 || !strings.Contains(text, "Bs. 3500") || !strings.Contains(text, "Nombre: Ana") {
			t.Fatalf("unexpected message %q", text)
		}
	})
}

func TestQuoteUseCase_GreetingLink(t *testing.T) {
	link := newQuoteUseCase(t).GreetingLink()
	if !strings.HasPrefix(link, "https://wa.me/59177204408?text=%C2%A1Hola!") {
		t.Fatalf("unexpected link %s", link)
	}
}
