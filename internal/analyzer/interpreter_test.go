package analyzer

import (
	"errors"
	"strings"
	"testing"

	"realestate-analyzer/internal/dataset"
	"realestate-analyzer/internal/models"
)

func seedStore() *dataset.Store {
	return dataset.NewFromSeed()
}

func TestInterpret_MatchesEveryKnownAreaCaseInsensitive(t *testing.T) {
	store := seedStore()
	for _, area := range store.Areas() {
		query := "what is happening in " + strings.ToUpper(area) + " these days"
		matched, _, err := Interpret(query, store)
		if err != nil {
			t.Fatalf("Interpret(%q) failed: %v", query, err)
		}
		found := false
		for _, m := range matched {
			if m == area {
				found = true
			}
		}
		if !found {
			t.Errorf("Interpret(%q) matched %v, expected to include %q", query, matched, area)
		}
	}
}

func TestInterpret_NoAreaMatched(t *testing.T) {
	_, _, err := Interpret("xyz-unknown-place", seedStore())
	if !errors.Is(err, ErrNoAreaMatched) {
		t.Fatalf("expected ErrNoAreaMatched, got %v", err)
	}
}

func TestInterpret_LongestExactMatchWins(t *testing.T) {
	store := dataset.New([]models.Record{
		{Area: "Nagar", Year: 2022, Price: 100, Demand: 10},
		{Area: "Viman Nagar", Year: 2022, Price: 200, Demand: 20},
	})

	matched, _, err := Interpret("flat prices in viman nagar", store)
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}
	if len(matched) != 1 || matched[0] != "Viman Nagar" {
		t.Errorf("expected [Viman Nagar], got %v", matched)
	}

	// the shorter name still wins when it is the only exact match
	matched, _, err = Interpret("flat prices in nagar", store)
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}
	if len(matched) != 1 || matched[0] != "Nagar" {
		t.Errorf("expected [Nagar], got %v", matched)
	}
}

func TestInterpret_PartialWordMatch(t *testing.T) {
	// "hinjewad" is not a full area name, so only the partial path can
	// resolve it
	matched, _, err := Interpret("prospects around hinjewad area", seedStore())
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}
	if len(matched) != 1 || matched[0] != "Hinjewadi" {
		t.Errorf("expected [Hinjewadi], got %v", matched)
	}
}

func TestInterpret_ExactBeatsPartial(t *testing.T) {
	store := dataset.New([]models.Record{
		{Area: "Baner", Year: 2022, Price: 9600, Demand: 700},
		{Area: "Banerghatta", Year: 2022, Price: 5400, Demand: 220},
	})

	// "baner" is an exact occurrence of Baner and only a partial word
	// match for Banerghatta; the exact match must win alone
	matched, _, err := Interpret("flats in baner", store)
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}
	if len(matched) != 1 || matched[0] != "Baner" {
		t.Errorf("expected [Baner], got %v", matched)
	}

	// with no exact occurrence the partial path picks up the longer name
	matched, _, err = Interpret("flats in ghatta", store)
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}
	if len(matched) != 1 || matched[0] != "Banerghatta" {
		t.Errorf("expected [Banerghatta], got %v", matched)
	}
}

func TestInterpret_DatasetOrderIsDeterministic(t *testing.T) {
	store := seedStore()
	first, _, err := Interpret("compare baner and aundh and wakad", store)
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}
	second, _, _ := Interpret("compare baner and aundh and wakad", store)
	if len(first) != 3 {
		t.Fatalf("expected 3 areas, got %v", first)
	}
	// seed order, not query order
	want := []string{"Aundh", "Baner", "Wakad"}
	for i, area := range want {
		if first[i] != area || second[i] != area {
			t.Errorf("expected %v in dataset order, got %v and %v", want, first, second)
		}
	}
}

func TestInterpret_Intents(t *testing.T) {
	tests := []struct {
		query string
		want  models.Intent
	}{
		{"compare Aundh and Baner", models.IntentCompare},
		{"Aundh vs Baner", models.IntentCompare},
		{"show demand trend for Aundh", models.IntentTrend},
		{"price growth in Wakad", models.IntentTrend},
		{"rank Aundh against others", models.IntentRank},
		{"which is the most expensive, Aundh or Kothrud", models.IntentRank},
		{"Aundh and Baner", models.IntentCompare}, // two areas, no keyword
		{"tell me about Aundh", models.IntentTrend},
		{"Aundh or Baner, which comes out on top", models.IntentRank}, // "top" at query end
		{"tell me about the Kothrud bus stop", models.IntentTrend},    // "stop" is not "top"
	}

	store := seedStore()
	for _, tt := range tests {
		_, intent, err := Interpret(tt.query, store)
		if err != nil {
			t.Fatalf("Interpret(%q) failed: %v", tt.query, err)
		}
		if intent != tt.want {
			t.Errorf("Interpret(%q) intent = %s, expected %s", tt.query, intent, tt.want)
		}
	}
}
