package pricing

import (
	"pannel_pintura/internal/domain/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is shown instead of a price while the area is missing.
const Placeholder = "Ingresa el área para ver la cotización"

// Messages shown to the visitor when a quote cannot be sent or priced.
const (
	MissingContactMessage = "Por favor completa tu nombre y teléfono"
	AreaOutOfRangeMessage = "El área ingresada es demasiado grande"
)

// DefaultLocale is the site locale (Spanish, Bolivia).
var DefaultLocale = language.MustParse("es-BO")

// FormatPrice renders a total in bolivianos with the locale's digit grouping.
func FormatPrice(price int64, locale language.Tag) string {
	return message.NewPrinter(locale).Sprintf("Bs. %d", price)
}

// PriceLabel is the headline a display layer shows for a result: the formatted
// price, or Placeholder when the result is not valid. Zero is never rendered as
// a quote.
func PriceLabel(result entities.QuoteResult, locale language.Tag) string {
	if !result.IsValid {
		return Placeholder
	}
	return FormatPrice(result.TotalPrice, locale)
}
