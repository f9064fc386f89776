package entities

import (
	"fmt"
	"strings"
)

// ProjectType selects which base-rate table applies to a quote.
type ProjectType string

const (
	ProjectTypeInterior ProjectType = "interior"
	ProjectTypeExterior ProjectType = "exterior"
)

// FinishTier selects the base rate within a project type.
//
// The site form posts the Spanish values (basico/premium/lujo); both spellings
// are accepted by ParseFinishTier.
type FinishTier string

const (
	FinishTierBasic   FinishTier = "basic"
	FinishTierPremium FinishTier = "premium"
	FinishTierLuxury  FinishTier = "luxury"
)

type WallCondition string

const (
	WallConditionGood WallCondition = "good"
	WallConditionFair WallCondition = "fair"
	WallConditionPoor WallCondition = "poor"
)

type Urgency string

const (
	UrgencyNormal Urgency = "normal"
	UrgencyUrgent Urgency = "urgent"
)

const (
	MinRoomCount = 1
	MaxRoomCount = 5

	// MaxAreaSquareMeters bounds the area accepted for a quote; larger values
	// are rejected rather than priced.
	MaxAreaSquareMeters = 1_000_000
)

var (
	ProjectTypes   = []ProjectType{ProjectTypeInterior, ProjectTypeExterior}
	FinishTiers    = []FinishTier{FinishTierBasic, FinishTierPremium, FinishTierLuxury}
	WallConditions = []WallCondition{WallConditionGood, WallConditionFair, WallConditionPoor}
	Urgencies      = []Urgency{UrgencyNormal, UrgencyUrgent}
)

// QuoteInput is the set of project parameters the estimator prices.
//
// Domain notes:
//   - AreaSquareMeters > 0 is the only gate for a displayable estimate; zero means
//     "awaiting input", not an error.
//   - Empty enum fields fall back to the first value of each list above.
//   - ContactName/ContactPhone are only needed when the quote is sent.
type QuoteInput struct {
	ProjectType      ProjectType   `json:"project_type"`
	AreaSquareMeters float64       `json:"area_m2"`
	FinishTier       FinishTier    `json:"finish"`
	RoomCount        int           `json:"rooms"`
	WallCondition    WallCondition `json:"wall_condition"`
	Urgency          Urgency       `json:"urgency"`
	ContactName      string        `json:"name"`
	ContactPhone     string        `json:"phone"`
}

// WithDefaults returns a copy with empty enum fields set to their defaults.
func (in QuoteInput) WithDefaults() QuoteInput {
	if in.ProjectType == "" {
		in.ProjectType = ProjectTypeInterior
	}
	if in.FinishTier == "" {
		in.FinishTier = FinishTierBasic
	}
	if in.WallCondition == "" {
		in.WallCondition = WallConditionGood
	}
	if in.Urgency == "" {
		in.Urgency = UrgencyNormal
	}
	return in
}

// EffectiveRoomCount clamps RoomCount into the range covered by the room table.
func (in QuoteInput) EffectiveRoomCount() int {
	switch {
	case in.RoomCount < MinRoomCount:
		return MinRoomCount
	case in.RoomCount > MaxRoomCount:
		return MaxRoomCount
	default:
		return in.RoomCount
	}
}

// AppliedFactors records the multipliers actually used for a quote.
type AppliedFactors struct {
	Room      float64 `json:"room"`
	Condition float64 `json:"condition"`
	Urgency   float64 `json:"urgency"`
}

// BreakdownLine is one display row of the price breakdown.
//
// Percent is set only for multiplier rows.
type BreakdownLine struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Percent *int64 `json:"percent,omitempty"`
}

const (
	BreakdownKeyBasePrice = "base_price"
	BreakdownKeyArea      = "area"
	BreakdownKeyRooms     = "rooms"
	BreakdownKeyCondition = "wall_condition"
	BreakdownKeyUrgency   = "urgency"
)

// QuoteResult is derived from a QuoteInput and a RateTable; it is never stored.
type QuoteResult struct {
	TotalPrice    int64           `json:"total_price"`
	Breakdown     []BreakdownLine `json:"breakdown"`
	IsValid       bool            `json:"is_valid"`
	BasePrice     float64         `json:"base_price"`
	Area          float64         `json:"area_m2"`
	Factors       AppliedFactors  `json:"factors"`
	WarrantyYears int             `json:"warranty_years"`
}

// WarrantyYears is the workmanship warranty offered per project type.
func (p ProjectType) WarrantyYears() int {
	if p == ProjectTypeExterior {
		return 5
	}
	return 3
}

func (p ProjectType) Label() string {
	if p == ProjectTypeExterior {
		return "Pintura Exterior"
	}
	return "Pintura Interior"
}

func (f FinishTier) Label() string {
	switch f {
	case FinishTierPremium:
		return "Premium"
	case FinishTierLuxury:
		return "Lujo"
	default:
		return "Básico"
	}
}

func (c WallCondition) Label() string {
	switch c {
	case WallConditionFair:
		return "Regular"
	case WallConditionPoor:
		return "Malo"
	default:
		return "Bueno"
	}
}

func (u Urgency) Label() string {
	if u == UrgencyUrgent {
		return "Urgente"
	}
	return "Normal"
}

func ParseProjectType(s string) (ProjectType, error) {
	switch normalizeToken(s) {
	case "":
		return "", nil
	case "interior":
		return ProjectTypeInterior, nil
	case "exterior":
		return ProjectTypeExterior, nil
	}
	return "", fmt.Errorf("unknown project type %q", s)
}

func ParseFinishTier(s string) (FinishTier, error) {
	switch normalizeToken(s) {
	case "":
		return "", nil
	case "basic", "basico", "básico":
		return FinishTierBasic, nil
	case "premium":
		return FinishTierPremium, nil
	case "luxury", "lujo":
		return FinishTierLuxury, nil
	}
	return "", fmt.Errorf("unknown finish tier %q", s)
}

func ParseWallCondition(s string) (WallCondition, error) {
	switch normalizeToken(s) {
	case "":
		return "", nil
	case "good", "bueno":
		return WallConditionGood, nil
	case "fair", "regular":
		return WallConditionFair, nil
	case "poor", "malo":
		return WallConditionPoor, nil
	}
	return "", fmt.Errorf("unknown wall condition %q", s)
}

func ParseUrgency(s string) (Urgency, error) {
	switch normalizeToken(s) {
	case "":
		return "", nil
	case "normal":
		return UrgencyNormal, nil
	case "urgent", "urgente":
		return UrgencyUrgent, nil
	}
	return "", fmt.Errorf("unknown urgency %q", s)
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
