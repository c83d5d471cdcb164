package textstats

import "errors"

// Error messages are shown to users verbatim.
var (
	// ErrEmptyInput is returned when the text is empty or whitespace-only.
	ErrEmptyInput = errors.New("Empty text provided")
	// ErrNoWords is returned when the text has content but no word tokens.
	ErrNoWords = errors.New("No valid words found in the text")
)

// Result holds the statistics for one analyzed text.
type Result struct {
	Total     int    `json:"total_words"`
	Unique    int    `json:"unique_words"`
	Word      string `json:"most_frequent_word"`
	Frequency int    `json:"frequency"`
}

// Analyze validates text and computes its word statistics.
func Analyze(text string) (Result, error) {
	_, result, err := analyze(text)
	return result, err
}

// AnalyzeWithFrequencies is Analyze that also returns the frequency map the
// statistics were derived from.
func AnalyzeWithFrequencies(text string) (*Frequencies, Result, error) {
	return analyze(text)
}

func analyze(text string) (*Frequencies, Result, error) {
	if IsBlank(text) {
		return nil, Result{}, ErrEmptyInput
	}

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil, Result{}, ErrNoWords
	}

	freq := Count(tokens)
	word, count, _ := freq.MostCommon()

	return freq, Result{
		Total:     len(tokens),
		Unique:    freq.Len(),
		Word:      word,
		Frequency: count,
	}, nil
}
