// Package webbridge adapts the quote engine to JSON strings for the
// browser build, so the page can recompute on every keystroke.
package webbridge

import (
	"encoding/json"
	"errors"
	"sync"

	"pannel_pintura/internal/domain/entities"
	"pannel_pintura/internal/domain/pricing"
	"pannel_pintura/internal/usecase"

	"golang.org/x/text/language"
)

const (
	DefaultHost      = "wa.me"
	DefaultRecipient = "59177204408"
)

// quoteRequest accepts both the canonical enum values and the Spanish form
// labels the page uses.
type quoteRequest struct {
	ProjectType   string  `json:"project_type"`
	Area          float64 `json:"area_m2"`
	Finish        string  `json:"finish"`
	Rooms         int     `json:"rooms"`
	WallCondition string  `json:"wall_condition"`
	Urgency       string  `json:"urgency"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
}

type QuoteReply struct {
	Result     *entities.QuoteResult `json:"result,omitempty"`
	PriceLabel string                `json:"price_label,omitempty"`
	URL        string                `json:"url,omitempty"`
	Error      string                `json:"error,omitempty"`
}

// Bridge holds the active rate table. Safe for concurrent use.
type Bridge struct {
	mu     sync.RWMutex
	quotes *usecase.QuoteUseCase
	locale language.Tag
}

func New() *Bridge {
	uc, err := usecase.NewQuoteUseCase(entities.DefaultRateTable(), DefaultHost, DefaultRecipient)
	if err != nil {
		panic(err) // the published table is always complete
	}
	return &Bridge{quotes: uc, locale: pricing.DefaultLocale}
}

// SetRates replaces the rate table with the JSON served by GET /v1/rates.
func (b *Bridge) SetRates(raw string) error {
	var t entities.RateTable
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return err
	}
	uc, err := usecase.NewQuoteUseCase(t, DefaultHost, DefaultRecipient)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.quotes = uc
	b.mu.Unlock()
	return nil
}

// Quote prices the JSON-encoded input.
func (b *Bridge) Quote(raw string) string {
	in, err := parseInput(raw)
	if err != nil {
		return reply(QuoteReply{Error: err.Error()})
	}

	b.mu.RLock()
	uc := b.quotes
	b.mu.RUnlock()

	res, err := uc.Compute(in)
	if err != nil {
		return reply(QuoteReply{Error: visitorMessage(err)})
	}
	return reply(QuoteReply{Result: &res, PriceLabel: pricing.PriceLabel(res, b.locale)})
}

// WhatsAppLink builds the deep link sending the quote, or reports why it
// cannot be sent yet.
func (b *Bridge) WhatsAppLink(raw string) string {
	in, err := parseInput(raw)
	if err != nil {
		return reply(QuoteReply{Error: err.Error()})
	}

	b.mu.RLock()
	uc := b.quotes
	b.mu.RUnlock()

	url, res, err := uc.QuoteLink(in)
	switch {
	case errors.Is(err, usecase.ErrIncompleteQuote):
		return reply(QuoteReply{Result: &res, PriceLabel: pricing.Placeholder, Error: pricing.Placeholder})
	case err != nil:
		return reply(QuoteReply{Error: visitorMessage(err)})
	}
	return reply(QuoteReply{Result: &res, PriceLabel: pricing.PriceLabel(res, b.locale), URL: url})
}

func visitorMessage(err error) string {
	switch {
	case errors.Is(err, usecase.ErrMissingContactData):
		return pricing.MissingContactMessage
	case errors.Is(err, pricing.ErrAreaOutOfRange):
		return pricing.AreaOutOfRangeMessage
	}
	return err.Error()
}

func parseInput(raw string) (entities.QuoteInput, error) {
	var r quoteRequest
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return entities.QuoteInput{}, err
	}
	pt, err := entities.ParseProjectType(r.ProjectType)
	if err != nil {
		return entities.QuoteInput{}, err
	}
	ft, err := entities.ParseFinishTier(r.Finish)
	if err != nil {
		return entities.QuoteInput{}, err
	}
	wc, err := entities.ParseWallCondition(r.WallCondition)
	if err != nil {
		return entities.QuoteInput{}, err
	}
	u, err := entities.ParseUrgency(r.Urgency)
	if err != nil {
		return entities.QuoteInput{}, err
	}
	return entities.QuoteInput{
		ProjectType:      pt,
		AreaSquareMeters: r.Area,
		FinishTier:       ft,
		RoomCount:        r.Rooms,
		WallCondition:    wc,
		Urgency:          u,
		ContactName:      r.Name,
		ContactPhone:     r.Phone,
	}, nil
}

func reply(r QuoteReply) string {
	b, err := json.Marshal(r)
	if err != nil {
		return `{"error":"internal error"}`
	}
	return string(b)
}
