// Package pricing holds the painting quote calculator and the text it hands off
// to the messaging channel.
//
// Everything here is pure: no I/O, no shared state. Callers recompute on every
// input change.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"pannel_pintura/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ErrAreaOutOfRange is returned when the area exceeds
// entities.MaxAreaSquareMeters or the total does not fit in an int64.
var ErrAreaOutOfRange = errors.New("área fuera de rango")

var (
	one      = decimal.NewFromInt(1)
	hundred  = decimal.NewFromInt(100)
	maxTotal = decimal.NewFromInt(math.MaxInt64)
)

// ComputeQuote prices input against table.
//
// A non-positive (or non-finite) area yields an invalid result with a zero price
// and no breakdown; that is the "awaiting input" state, not a failure. An area
// above entities.MaxAreaSquareMeters fails with ErrAreaOutOfRange, and a lookup
// miss in table is wrapped in entities.ErrConfigurationGap.
func ComputeQuote(input entities.QuoteInput, table entities.RateTable) (entities.QuoteResult, error) {
	area := input.AreaSquareMeters
	if !(area > 0) || math.IsInf(area, 1) {
		return entities.QuoteResult{Breakdown: []entities.BreakdownLine{}}, nil
	}
	if area > entities.MaxAreaSquareMeters {
		return entities.QuoteResult{}, fmt.Errorf("%w: %s m²", ErrAreaOutOfRange, formatNumber(area))
	}

	in := input.WithDefaults()
	rooms := in.EffectiveRoomCount()

	base, err := table.BaseRate(in.ProjectType, in.FinishTier)
	if err != nil {
		return entities.QuoteResult{}, err
	}
	roomFactor, err := table.RoomFactor(rooms)
	if err != nil {
		return entities.QuoteResult{}, err
	}
	conditionFactor, err := table.ConditionFactor(in.WallCondition)
	if err != nil {
		return entities.QuoteResult{}, err
	}
	urgencyFactor, err := table.UrgencyFactor(in.Urgency)
	if err != nil {
		return entities.QuoteResult{}, err
	}

	raw := decimal.NewFromFloat(area).
		Mul(decimal.NewFromFloat(base)).
		Mul(decimal.NewFromFloat(roomFactor)).
		Mul(decimal.NewFromFloat(conditionFactor)).
		Mul(decimal.NewFromFloat(urgencyFactor)).
		Round(0)
	if raw.GreaterThan(maxTotal) {
		return entities.QuoteResult{}, fmt.Errorf("%w: total %s", ErrAreaOutOfRange, raw.String())
	}

	return entities.QuoteResult{
		TotalPrice: raw.IntPart(),
		Breakdown: []entities.BreakdownLine{
			{
				Key:   entities.BreakdownKeyBasePrice,
				Label: fmt.Sprintf("Precio base (%s)", in.FinishTier.Label()),
				Value: fmt.Sprintf("Bs. %s/m²", formatNumber(base)),
			},
			{
				Key:   entities.BreakdownKeyArea,
				Label: "Área total",
				Value: formatNumber(area) + " m²",
			},
			percentLine(entities.BreakdownKeyRooms, fmt.Sprintf("Complejidad (%d hab.)", in.RoomCount), roomFactor),
			percentLine(entities.BreakdownKeyCondition, "Estado paredes", conditionFactor),
			percentLine(entities.BreakdownKeyUrgency, "Urgencia", urgencyFactor),
		},
		IsValid:   true,
		BasePrice: base,
		Area:      area,
		Factors: entities.AppliedFactors{
			Room:      roomFactor,
			Condition: conditionFactor,
			Urgency:   urgencyFactor,
		},
		WarrantyYears: in.ProjectType.WarrantyYears(),
	}, nil
}

// FactorPercent is the display adjustment of a multiplier: round((f-1)*100).
// Display percentages are rounded independently and do not recombine exactly
// into the total.
func FactorPercent(factor float64) int64 {
	return decimal.NewFromFloat(factor).Sub(one).Mul(hundred).Round(0).IntPart()
}

func percentLine(key, label string, factor float64) entities.BreakdownLine {
	pct := FactorPercent(factor)
	return entities.BreakdownLine{
		Key:     key,
		Label:   label,
		Value:   fmt.Sprintf("+%d%%", pct),
		Percent: &pct,
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
