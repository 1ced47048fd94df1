package domain

import "testing"

func TestRecalculateWordCounts(t *testing.T) {
	s := &Summary{
		OriginalText:       "A B C",
		AIGeneratedSummary: "one two",
	}
	s.RecalculateWordCounts()

	if s.WordCountOriginal != 3 {
		t.Errorf("WordCountOriginal = %d, want 3", s.WordCountOriginal)
	}
	if s.WordCountSummary != 2 {
		t.Errorf("WordCountSummary = %d, want 2", s.WordCountSummary)
	}
}

func TestRecalculateWordCountsWhitespace(t *testing.T) {
	s := &Summary{OriginalText: "  hello   world \n\t foo  "}
	s.RecalculateWordCounts()

	if s.WordCountOriginal != 3 {
		t.Errorf("WordCountOriginal = %d, want 3", s.WordCountOriginal)
	}
	if s.WordCountSummary != 0 {
		t.Errorf("WordCountSummary = %d, want 0 for empty summary", s.WordCountSummary)
	}
}

func TestFinalSummaryPrefersEdited(t *testing.T) {
	s := &Summary{
		AIGeneratedSummary: "generated text",
		EditedSummary:      "edited text",
	}
	if got := s.FinalSummary(); got != "edited text" {
		t.Errorf("FinalSummary() = %q, want edited version", got)
	}
}

func TestFinalSummaryFallsBackToGenerated(t *testing.T) {
	s := &Summary{AIGeneratedSummary: "generated text"}
	if got := s.FinalSummary(); got != "generated text" {
		t.Errorf("FinalSummary() = %q, want generated version", got)
	}

	empty := &Summary{}
	if got := empty.FinalSummary(); got != "" {
		t.Errorf("FinalSummary() = %q, want empty string", got)
	}
}

func TestWordCountTracksEditedSummary(t *testing.T) {
	s := &Summary{
		OriginalText:       "a b c d",
		AIGeneratedSummary: "one two three",
		EditedSummary:      "one",
	}
	s.RecalculateWordCounts()

	if s.WordCountSummary != 1 {
		t.Errorf("WordCountSummary = %d, want 1 (edited summary wins)", s.WordCountSummary)
	}
}

func TestValidStatus(t *testing.T) {
	for _, valid := range []string{"draft", "processing", "completed", "error"} {
		if !ValidStatus(valid) {
			t.Errorf("ValidStatus(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "done", "DRAFT"} {
		if ValidStatus(invalid) {
			t.Errorf("ValidStatus(%q) = true, want false", invalid)
		}
	}
}

func TestValidType(t *testing.T) {
	for _, valid := range []string{"meeting", "call", "document", "other"} {
		if !ValidType(valid) {
			t.Errorf("ValidType(%q) = false, want true", valid)
		}
	}
	if ValidType("podcast") {
		t.Error("ValidType(\"podcast\") = true, want false")
	}
}
