// Package textstats computes word statistics for a paragraph of text.
//
// Analyze is the entry point: it validates the input, lowercases it with full
// Unicode case mapping, splits it into word tokens (runs of letters, numbers
// and underscores), and reports the total and distinct token counts together
// with the most frequent word. Ties on frequency resolve to the word that
// appeared first, so results are deterministic for a given input.
//
// The package is pure: no I/O, no logging, no retained state. Callers decide
// how to present results and how to react to ErrEmptyInput and ErrNoWords.
package textstats
