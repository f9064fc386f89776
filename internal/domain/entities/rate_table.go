package entities

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrConfigurationGap marks a rate or multiplier missing from a RateTable.
// A gap is a configuration defect: it is never defaulted.
var ErrConfigurationGap = errors.New("rate table configuration gap")

// RateTable is the pricing configuration: base price per m² (Bs) by project type
// and finish tier, plus three independent multiplier tables.
//
// A RateTable is loaded once and treated as read-only by every caller; the
// pricing functions receive it as a value so tests can inject alternate tables.
type RateTable struct {
	Base      map[ProjectType]map[FinishTier]float64 `json:"base" yaml:"base"`
	Room      map[int]float64                        `json:"room" yaml:"room"`
	Condition map[WallCondition]float64              `json:"condition" yaml:"condition"`
	Urgency   map[Urgency]float64                    `json:"urgency" yaml:"urgency"`
}

// DefaultRateTable returns the rates published on the site.
func DefaultRateTable() RateTable {
	return RateTable{
		Base: map[ProjectType]map[FinishTier]float64{
			ProjectTypeInterior: {
				FinishTierBasic:   35,
				FinishTierPremium: 65,
				FinishTierLuxury:  95,
			},
			ProjectTypeExterior: {
				FinishTierBasic:   45,
				FinishTierPremium: 75,
				FinishTierLuxury:  105,
			},
		},
		Room: map[int]float64{
			1: 1.0,
			2: 1.1,
			3: 1.15,
			4: 1.2,
			5: 1.25,
		},
		Condition: map[WallCondition]float64{
			WallConditionGood: 1.0,
			WallConditionFair: 1.2,
			WallConditionPoor: 1.5,
		},
		Urgency: map[Urgency]float64{
			UrgencyNormal: 1.0,
			UrgencyUrgent: 1.3,
		},
	}
}

// LoadRateTable reads a YAML rate table from path and validates it.
func LoadRateTable(path string) (RateTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RateTable{}, fmt.Errorf("read rate table: %w", err)
	}
	return ParseRateTable(raw)
}

func ParseRateTable(raw []byte) (RateTable, error) {
	var t RateTable
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return RateTable{}, fmt.Errorf("parse rate table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return RateTable{}, err
	}
	return t, nil
}

// Validate reports every gap in the table. Multipliers must be >= 1.0 and base
// rates positive.
func (t RateTable) Validate() error {
	var errs []error
	for _, p := range ProjectTypes {
		for _, f := range FinishTiers {
			v, ok := t.Base[p][f]
			switch {
			case !ok:
				errs = append(errs, fmt.Errorf("%w: missing base rate %s/%s", ErrConfigurationGap, p, f))
			case v <= 0:
				errs = append(errs, fmt.Errorf("%w: base rate %s/%s must be positive, got %v", ErrConfigurationGap, p, f, v))
			}
		}
	}
	for n := MinRoomCount; n <= MaxRoomCount; n++ {
		errs = appendFactorErr(errs, "room", fmt.Sprint(n), t.Room, n)
	}
	for _, c := range WallConditions {
		errs = appendFactorErr(errs, "condition", string(c), t.Condition, c)
	}
	for _, u := range Urgencies {
		errs = appendFactorErr(errs, "urgency", string(u), t.Urgency, u)
	}
	return errors.Join(errs...)
}

func appendFactorErr[K comparable](errs []error, table, name string, m map[K]float64, key K) []error {
	v, ok := m[key]
	if !ok {
		return append(errs, fmt.Errorf("%w: missing %s multiplier %s", ErrConfigurationGap, table, name))
	}
	if v < 1.0 {
		return append(errs, fmt.Errorf("%w: %s multiplier %s must be >= 1.0, got %v", ErrConfigurationGap, table, name, v))
	}
	return errs
}

// BaseRate looks up the base price per m².
func (t RateTable) BaseRate(p ProjectType, f FinishTier) (float64, error) {
	v, ok := t.Base[p][f]
	if !ok {
		return 0, fmt.Errorf("%w: missing base rate %s/%s", ErrConfigurationGap, p, f)
	}
	return v, nil
}

func (t RateTable) RoomFactor(rooms int) (float64, error) {
	v, ok := t.Room[rooms]
	if !ok {
		return 0, fmt.Errorf("%w: missing room multiplier %d", ErrConfigurationGap, rooms)
	}
	return v, nil
}

func (t RateTable) ConditionFactor(c WallCondition) (float64, error) {
	v, ok := t.Condition[c]
	if !ok {
		return 0, fmt.Errorf("%w: missing condition multiplier %s", ErrConfigurationGap, c)
	}
	return v, nil
}

func (t RateTable) UrgencyFactor(u Urgency) (float64, error) {
	v, ok := t.Urgency[u]
	if !ok {
		return 0, fmt.Errorf("%w: missing urgency multiplier %s", ErrConfigurationGap, u)
	}
	return v, nil
}
