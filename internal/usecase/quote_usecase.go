package usecase

import (
	"errors"
	"strings"

	"pannel_pintura/internal/domain/entities"
	"pannel_pintura/internal/domain/pricing"
)

var (
	ErrMissingContactData = errors.New("missing contact name or phone")
	ErrIncompleteQuote    = errors.New("quote has no price yet")
)

// IQuoteUseCase prices quotes against one rate table and builds the
// messaging deep links for them.
type IQuoteUseCase interface {
	Rates() entities.RateTable
	Compute(input entities.QuoteInput) (entities.QuoteResult, error)
	QuoteLink(input entities.QuoteInput) (string, entities.QuoteResult, error)
	GreetingLink() string
}

type QuoteUseCase struct {
	table     entities.RateTable
	host      string
	recipient string
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase validates table up front so Compute never hits a
// configuration gap at request time.
func NewQuoteUseCase(table entities.RateTable, host, recipient string) (*QuoteUseCase, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &QuoteUseCase{table: table, host: host, recipient: recipient}, nil
}

func (u *QuoteUseCase) Rates() entities.RateTable { return u.table }

func (u *QuoteUseCase) Compute(input entities.QuoteInput) (entities.QuoteResult, error) {
	return pricing.ComputeQuote(input, u.table)
}

// QuoteLink requires name and phone plus a priced quote before building the
// link that sends it.
func (u *QuoteUseCase) QuoteLink(input entities.QuoteInput) (string, entities.QuoteResult, error) {
	if strings.TrimSpace(input.ContactName) == "" || strings.TrimSpace(input.ContactPhone) == "" {
		return "", entities.QuoteResult{}, ErrMissingContactData
	}

	result, err := u.Compute(input)
	if err != nil {
		return "", entities.QuoteResult{}, err
	}
	if !result.IsValid {
		return "", result, ErrIncompleteQuote
	}
	return pricing.DeepLink(u.host, u.recipient, pricing.RenderOutboundMessage(input, result)), result, nil
}

func (u *QuoteUseCase) GreetingLink() string {
	return pricing.DeepLink(u.host, u.recipient, pricing.GreetingMessage())
}
