package textstats

import "sort"

// WordCount pairs a word with its number of occurrences.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Frequencies counts word occurrences while remembering the order in which
// each distinct word was first seen.
type Frequencies struct {
	index  map[string]int
	counts []WordCount
}

// NewFrequencies returns an empty frequency map.
func NewFrequencies() *Frequencies {
	return &Frequencies{index: make(map[string]int)}
}

// Count builds a frequency map from tokens in a single pass.
func Count(tokens []string) *Frequencies {
	f := &Frequencies{index: make(map[string]int, len(tokens))}
	for _, token := range tokens {
		f.Add(token)
	}
	return f
}

// Add records one occurrence of word.
func (f *Frequencies) Add(word string) {
	if i, ok := f.index[word]; ok {
		f.counts[i].Count++
		return
	}
	f.index[word] = len(f.counts)
	f.counts = append(f.counts, WordCount{Word: word, Count: 1})
}

// Len returns the number of distinct words.
func (f *Frequencies) Len() int {
	if f == nil {
		return 0
	}
	return len(f.counts)
}

// Count returns the occurrences recorded for word.
func (f *Frequencies) Count(word string) int {
	if f == nil {
		return 0
	}
	if i, ok := f.index[word]; ok {
		return f.counts[i].Count
	}
	return 0
}

// Entries returns a copy of the counts in first-occurrence order.
func (f *Frequencies) Entries() []WordCount {
	if f == nil {
		return nil
	}
	out := make([]WordCount, len(f.counts))
	copy(out, f.counts)
	return out
}

// MostCommon returns the word with the highest count. When several words share
// the highest count, the one seen first wins. ok is false for an empty map.
func (f *Frequencies) MostCommon() (word string, count int, ok bool) {
	if f.Len() == 0 {
		return "", 0, false
	}
	best := f.counts[0]
	for _, entry := range f.counts[1:] {
		if entry.Count > best.Count {
			best = entry
		}
	}
	return best.Word, best.Count, true
}

// Top returns up to n entries ordered by descending count, keeping
// first-occurrence order among equal counts. n <= 0 returns nil.
func (f *Frequencies) Top(n int) []WordCount {
	if n <= 0 || f.Len() == 0 {
		return nil
	}
	ranked := f.Entries()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
