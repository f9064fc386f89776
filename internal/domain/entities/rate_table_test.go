package entities

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultRateTable_Valid(t *testing.T) {
	if err := DefaultRateTable().Validate(); err != nil {
		t.Fatalf("default table should be valid: %v", err)
	}
}

func TestRateTable_ValidateReportsEveryGap(t *testing.T) {
	table := DefaultRateTable()
	delete(table.Base[ProjectTypeExterior], FinishTierLuxury)
	delete(table.Room, 4)
	table.Condition[WallConditionFair] = 0.9
	table.Urgency = nil

	err := table.Validate()
	if !errors.Is(err, ErrConfigurationGap) {
		t.Fatalf("expected ErrConfigurationGap, got %v", err)
	}
	for _, want := range []string{
		"missing base rate exterior/luxury",
		"missing room multiplier 4",
		"condition multiplier fair must be >= 1.0",
		"missing urgency multiplier normal",
		"missing urgency multiplier urgent",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
}

func TestRateTable_ValidateRejectsNonPositiveBase(t *testing.T) {
	table := DefaultRateTable()
	table.Base[ProjectTypeInterior][FinishTierPremium] = 0
	if err := table.Validate(); !errors.Is(err, ErrConfigurationGap) {
		t.Fatalf("expected ErrConfigurationGap, got %v", err)
	}
}

const sampleRateTable = `
base:
  interior: {basic: 40, premium: 70, luxury: 100}
  exterior: {basic: 50, premium: 80, luxury: 110}
room: {1: 1.0, 2: 1.1, 3: 1.15, 4: 1.2, 5: 1.25}
condition: {good: 1.0, fair: 1.2, poor: 1.5}
urgency: {normal: 1.0, urgent: 1.4}
`

func TestParseRateTable(t *testing.T) {
	table, err := ParseRateTable([]byte(sampleRateTable))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := table.BaseRate(ProjectTypeInterior, FinishTierBasic); v != 40 {
		t.Fatalf("expected 40, got %v", v)
	}
	if v, _ := table.UrgencyFactor(UrgencyUrgent); v != 1.4 {
		t.Fatalf("expected 1.4, got %v", v)
	}
	if v, _ := table.RoomFactor(3); v != 1.15 {
		t.Fatalf("expected 1.15, got %v", v)
	}
}

func TestParseRateTable_Errors(t *testing.T) {
	if _, err := ParseRateTable([]byte("base: [")); err == nil {
		t.Fatalf("expected yaml error")
	}

	incomplete := strings.Replace(sampleRateTable, "5: 1.25", "6: 1.3", 1)
	if _, err := ParseRateTable([]byte(incomplete)); !errors.Is(err, ErrConfigurationGap) {
		t.Fatalf("expected ErrConfigurationGap, got %v", err)
	}
}

func TestLoadRateTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tarifas.yaml")
	if err := os.WriteFile(path, []byte(sampleRateTable), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	table, err := LoadRateTable(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := table.BaseRate(ProjectTypeExterior, FinishTierLuxury); v != 110 {
		t.Fatalf("expected 110, got %v", v)
	}

	if _, err := LoadRateTable(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
