package textstats_test

import (
	"reflect"
	"testing"

	"wordstat/internal/textstats"
)

func TestCountPreservesFirstOccurrenceOrder(t *testing.T) {
	freq := textstats.Count([]string{"pear", "apple", "pear", "fig", "apple", "pear"})

	want := []textstats.WordCount{
		{Word: "pear", Count: 3},
		{Word: "apple", Count: 2},
		{Word: "fig", Count: 1},
	}
	if got := freq.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Entries = %+v, want %+v", got, want)
	}
	if freq.Len() != 3 {
		t.Fatalf("Len = %d, want 3", freq.Len())
	}
	if freq.Count("apple") != 2 || freq.Count("missing") != 0 {
		t.Fatalf("unexpected counts: apple=%d missing=%d", freq.Count("apple"), freq.Count("missing"))
	}
}

func TestMostCommonTieBreaksOnFirstOccurrence(t *testing.T) {
	freq := textstats.NewFrequencies()
	for _, word := range []string{"b", "a", "c", "a", "b", "c"} {
		freq.Add(word)
	}
	word, count, ok := freq.MostCommon()
	if !ok || word != "b" || count != 2 {
		t.Fatalf("MostCommon = (%q, %d, %v), want (\"b\", 2, true)", word, count, ok)
	}
}

func TestMostCommonOnEmptyMap(t *testing.T) {
	if _, _, ok := textstats.NewFrequencies().MostCommon(); ok {
		t.Fatal("expected ok=false for empty frequency map")
	}
	var nilFreq *textstats.Frequencies
	if nilFreq.Len() != 0 || nilFreq.Entries() != nil {
		t.Fatal("expected nil frequency map to behave as empty")
	}
}

func TestTopRanksByCountThenFirstOccurrence(t *testing.T) {
	freq := textstats.Count([]string{"one", "two", "three", "two", "three", "four", "four", "four"})

	got := freq.Top(3)
	want := []textstats.WordCount{
		{Word: "four", Count: 3},
		{Word: "two", Count: 2},
		{Word: "three", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Top(3) = %+v, want %+v", got, want)
	}

	if all := freq.Top(10); len(all) != 4 {
		t.Fatalf("Top(10) returned %d entries, want 4", len(all))
	}
	if none := freq.Top(0); none != nil {
		t.Fatalf("Top(0) = %+v, want nil", none)
	}
}

func TestTopDoesNotReorderEntries(t *testing.T) {
	freq := textstats.Count([]string{"low", "high", "high"})
	_ = freq.Top(2)
	if entries := freq.Entries(); entries[0].Word != "low" {
		t.Fatalf("Top mutated insertion order: %+v", entries)
	}
}
