package dataset

import (
	"testing"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidateDetectsMisalignment(t *testing.T) {
	// Truncate one series, validate, then restore.
	saved := Populations
	Populations = Populations[:len(Populations)-1]
	defer func() { Populations = saved }()

	err := Validate()
	if err == nil {
		t.Fatal("Validate() should fail when a parallel series is truncated")
	}
}

func TestStanceLabel(t *testing.T) {
	tests := []struct {
		name   string
		stance Stance
		want   string
	}{
		{"for resolutions critical of Israel", StanceFor, "A favor"},
		{"abstention", StanceAbstain, "Abstencion"},
		{"against resolutions", StanceAgainst, "En contra"},
		{"zero value", Stance(0), "Desconocida"},
		{"out of range", Stance(9), "Desconocida"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stance.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCountrySeriesAligned(t *testing.T) {
	n := len(Countries)
	if len(Populations) != n {
		t.Errorf("Populations has %d entries, want %d", len(Populations), n)
	}
	if len(SupportLevel) != n {
		t.Errorf("SupportLevel has %d entries, want %d", len(SupportLevel), n)
	}
	if len(PctPopulation) != n {
		t.Errorf("PctPopulation has %d entries, want %d", len(PctPopulation), n)
	}
}

func TestPopulationsDescending(t *testing.T) {
	// The population chart relies on the source ordering: largest first.
	for i := 1; i < len(Populations); i++ {
		if Populations[i] > Populations[i-1] {
			t.Errorf("Populations[%d] = %d exceeds Populations[%d] = %d; series must be descending",
				i, Populations[i], i-1, Populations[i-1])
		}
	}
}

func TestOnlyTwoCountriesVoteAgainst(t *testing.T) {
	// Hungary and Czechia are the only countries voting against the
	// resolutions, a figure quoted in the report's stat panel.
	var against []string
	for i, s := range SupportLevel {
		if s == StanceAgainst {
			against = append(against, Countries[i])
		}
	}
	if len(against) != 2 {
		t.Fatalf("got %d countries voting against, want 2: %v", len(against), against)
	}
	want := map[string]bool{"Hungria": true, "Chequia": true}
	for _, name := range against {
		if !want[name] {
			t.Errorf("unexpected country voting against: %s", name)
		}
	}
}

func TestRecognitionTimelineOrdered(t *testing.T) {
	if len(RecognitionTimeline) == 0 {
		t.Fatal("RecognitionTimeline is empty")
	}
	for i, ev := range RecognitionTimeline {
		if ev.When == "" || ev.What == "" {
			t.Errorf("RecognitionTimeline[%d] has empty field: %+v", i, ev)
		}
	}
	if RecognitionTimeline[0].When != "1988" {
		t.Errorf("first timeline entry = %s, want 1988", RecognitionTimeline[0].When)
	}
}
