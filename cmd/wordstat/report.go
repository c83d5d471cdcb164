package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"wordstat/internal/textstats"
)

const reportRuleWidth = 20

// writeReport prints the fixed statistics block. Its layout is part of the
// command's output contract.
func writeReport(w io.Writer, r textstats.Result) error {
	var b strings.Builder
	b.WriteString("\nText Analysis Results:\n")
	b.WriteString(strings.Repeat("-", reportRuleWidth))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Total words: %d\n", r.Total)
	fmt.Fprintf(&b, "Unique words: %d\n", r.Unique)
	fmt.Fprintf(&b, "Most frequent word: '%s' (appears %d times)\n", r.Word, r.Frequency)
	_, err := io.WriteString(w, b.String())
	return err
}

// writeTopWords appends a ranked table of the most frequent words.
func writeTopWords(w io.Writer, entries []textstats.WordCount, total int) error {
	if len(entries) == 0 {
		return nil
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Word", "Count", "Share"})
	for i, entry := range entries {
		tw.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			entry.Word,
			strconv.Itoa(entry.Count),
			formatShare(entry.Count, total),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	_, err := fmt.Fprintf(w, "\nTop %d words:\n%s\n", len(entries), tw.Render())
	return err
}

func formatShare(count, total int) string {
	if total <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(count)*100/float64(total))
}
