package entities

import "testing"

func TestQuoteInput_WithDefaults(t *testing.T) {
	in := QuoteInput{AreaSquareMeters: 10}
	got := in.WithDefaults()
	if got.ProjectType != ProjectTypeInterior || got.FinishTier != FinishTierBasic ||
		got.WallCondition != WallConditionGood || got.Urgency != UrgencyNormal {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	if in.ProjectType != "" {
		t.Fatalf("WithDefaults must not modify the receiver")
	}

	set := QuoteInput{ProjectType: ProjectTypeExterior, FinishTier: FinishTierLuxury}
	if got := set.WithDefaults(); got.ProjectType != ProjectTypeExterior || got.FinishTier != FinishTierLuxury {
		t.Fatalf("explicit values overwritten: %+v", got)
	}
}

func TestQuoteInput_EffectiveRoomCount(t *testing.T) {
	cases := map[int]int{-1: 1, 0: 1, 1: 1, 4: 4, 5: 5, 6: 5, 99: 5}
	for rooms, want := range cases {
		if got := (QuoteInput{RoomCount: rooms}).EffectiveRoomCount(); got != want {
			t.Fatalf("rooms %d: expected %d, got %d", rooms, want, got)
		}
	}
}

func TestParseEnums(t *testing.T) {
	t.Run("project type", func(t *testing.T) {
		for in, want := range map[string]ProjectType{"": "", "Interior": ProjectTypeInterior, " exterior ": ProjectTypeExterior} {
			got, err := ParseProjectType(in)
			if err != nil || got != want {
				t.Fatalf("%q: expected %q, got %q (%v)", in, want, got, err)
			}
		}
		if _, err := ParseProjectType("ambos"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("finish tier", func(t *testing.T) {
		for in, want := range map[string]FinishTier{"basico": FinishTierBasic, "básico": FinishTierBasic, "basic": FinishTierBasic, "premium": FinishTierPremium, "lujo": FinishTierLuxury, "LUXURY": FinishTierLuxury} {
			got, err := ParseFinishTier(in)
			if err != nil || got != want {
				t.Fatalf("%q: expected %q, got %q (%v)", in, want, got, err)
			}
		}
		if _, err := ParseFinishTier("gold"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("wall condition", func(t *testing.T) {
		for in, want := range map[string]WallCondition{"bueno": WallConditionGood, "regular": WallConditionFair, "malo": WallConditionPoor, "poor": WallConditionPoor} {
			got, err := ParseWallCondition(in)
			if err != nil || got != want {
				t.Fatalf("%q: expected %q, got %q (%v)", in, want, got, err)
			}
		}
		if _, err := ParseWallCondition("ruinoso"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("urgency", func(t *testing.T) {
		for in, want := range map[string]Urgency{"normal": UrgencyNormal, "urgente": UrgencyUrgent, "urgent": UrgencyUrgent} {
			got, err := ParseUrgency(in)
			if err != nil || got != want {
				t.Fatalf("%q: expected %q, got %q (%v)", in, want, got, err)
			}
		}
		if _, err := ParseUrgency("ya"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestLabelsAndWarranty(t *testing.T) {
	if ProjectTypeInterior.WarrantyYears() != 3 || ProjectTypeExterior.WarrantyYears() != 5 {
		t.Fatalf("unexpected warranty years")
	}
	if FinishTierLuxury.Label() != "Lujo" || WallConditionFair.Label() != "Regular" || UrgencyUrgent.Label() != "Urgente" {
		t.Fatalf("unexpected labels")
	}
}
