package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordstat/internal/textstats"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func runCLI(t *testing.T, ctx context.Context, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(ctx, args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestCLIPrintsReport(t *testing.T) {
	isolateConfig(t)

	out, _, code := runCLI(t, context.Background(), "Hello world! Hello again!")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (output %q)", code, out)
	}
	want := "\nText Analysis Results:\n" +
		"--------------------\n" +
		"Total words: 4\n" +
		"Unique words: 3\n" +
		"Most frequent word: 'hello' (appears 2 times)\n"
	if out != want {
		t.Fatalf("unexpected report:\n got %q\nwant %q", out, want)
	}
}

func TestCLIAcceptsDashLeadingParagraphs(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"negative number", []string{"-5 apples"}, "Total words: 2\nUnique words: 2\nMost frequent word: '5' (appears 1 times)\n"},
		{"list items", []string{"- item one - item two"}, "Total words: 4\nUnique words: 3\nMost frequent word: 'item' (appears 2 times)\n"},
		{"long dash words", []string{"--verbose is a word"}, "Total words: 4\nUnique words: 4\nMost frequent word: 'verbose' (appears 1 times)\n"},
		{"followed by flag", []string{"-5 apples", "--top", "1"}, "Most frequent word: '5' (appears 1 times)\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, code := runCLI(t, context.Background(), tc.args...)
			if code != 0 {
				t.Fatalf("expected exit 0, got %d (output %q)", code, out)
			}
			if !strings.Contains(out, tc.want) {
				t.Fatalf("expected %q in %q", tc.want, out)
			}
		})
	}
}

func TestCLIValidationFailures(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"empty", "", "Error: Empty text provided\n"},
		{"whitespace", "   \t", "Error: Empty text provided\n"},
		{"punctuation", "!!! ??? ...", "Error: No valid words found in the text\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, code := runCLI(t, context.Background(), "--", tc.arg)
			if code != 1 {
				t.Fatalf("expected exit 1, got %d", code)
			}
			if out != tc.want {
				t.Fatalf("unexpected output: got %q want %q", out, tc.want)
			}
		})
	}
}

func TestCLIArgumentErrors(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name    string
		args    []string
		wantOut string
	}{
		{"missing paragraph", nil, "\nError: the following arguments are required: paragraph\n"},
		{"extra arguments", []string{"one", "two", "three"}, "\nError: unrecognized arguments: two three\n"},
		{"unknown flag", []string{"--nope", "text"}, "\nError: unknown flag: --nope\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, errOut, code := runCLI(t, context.Background(), tc.args...)
			if code != 1 {
				t.Fatalf("expected exit 1, got %d", code)
			}
			if out != tc.wantOut {
				t.Fatalf("unexpected output: got %q want %q", out, tc.wantOut)
			}
			if !strings.Contains(errOut, "Usage:") {
				t.Fatalf("expected usage on stderr, got %q", errOut)
			}
		})
	}
}

func TestCLIInterrupted(t *testing.T) {
	isolateConfig(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, _, code := runCLI(t, ctx, "Hello world")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if out != "\nProgram interrupted by user\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCLIHelpExitsZero(t *testing.T) {
	isolateConfig(t)

	out, _, code := runCLI(t, context.Background(), "--help")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "wordstat <paragraph>") {
		t.Fatalf("expected usage line in help output, got %q", out)
	}
}

func TestCLITopWordsTable(t *testing.T) {
	isolateConfig(t)

	out, _, code := runCLI(t, context.Background(), "--top", "2", "b a b a c")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (output %q)", code, out)
	}
	if !strings.HasPrefix(out, "\nText Analysis Results:\n") {
		t.Fatalf("expected fixed report first, got %q", out)
	}
	if !strings.Contains(out, "Most frequent word: 'b' (appears 2 times)") {
		t.Fatalf("unexpected winner in %q", out)
	}
	if !strings.Contains(out, "Top 2 words:") {
		t.Fatalf("expected top words heading in %q", out)
	}
	bIdx := strings.Index(out, "│ b ")
	aIdx := strings.Index(out, "│ a ")
	if bIdx < 0 || aIdx < 0 || bIdx > aIdx {
		t.Fatalf("expected b ranked before a in %q", out)
	}
	if strings.Contains(out, "│ c ") {
		t.Fatalf("expected table limited to two rows, got %q", out)
	}
	if !strings.Contains(out, "40.0%") {
		t.Fatalf("expected share column in %q", out)
	}
}

func TestCLIReadsConfigFile(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "wordstat.toml")
	if err := os.WriteFile(path, []byte("[report]\ntop_words = 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, _, code := runCLI(t, context.Background(), "--config", path, "x y y")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (output %q)", code, out)
	}
	if !strings.Contains(out, "Top 1 words:") {
		t.Fatalf("expected table from config in %q", out)
	}

	out, _, code = runCLI(t, context.Background(), "--config", path, "--top", "0", "x y y")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if strings.Contains(out, "Top ") {
		t.Fatalf("expected flag to disable table, got %q", out)
	}
}

func TestCLIRejectsInvalidConfig(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "wordstat.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, _, code := runCLI(t, context.Background(), "-c", path, "text")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.HasPrefix(out, "\nError: logging.level") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCLIDebugLogsGoToStderr(t *testing.T) {
	isolateConfig(t)

	out, errOut, code := runCLI(t, context.Background(), "--log-level", "debug", "--log-format", "json", "a a b")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if strings.Contains(out, "analysis complete") {
		t.Fatalf("logs leaked into stdout: %q", out)
	}

	records := map[string]map[string]any{}
	for _, line := range strings.Split(strings.TrimSpace(errOut), "\n") {
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		msg, _ := record["msg"].(string)
		records[msg] = record
	}

	analysis, ok := records["analysis complete"]
	if !ok || analysis["component"] != "analyzer" {
		t.Fatalf("missing analyzer record in %q", errOut)
	}
	id, _ := analysis["correlation_id"].(string)
	if id == "" {
		t.Fatalf("expected correlation id in %v", analysis)
	}
	if analysis["most_frequent_word"] != "a" {
		t.Fatalf("unexpected logged word: %v", analysis["most_frequent_word"])
	}
	if elapsed, _ := analysis["elapsed"].(string); elapsed == "" {
		t.Fatalf("expected elapsed duration text, got %v", analysis["elapsed"])
	}

	source, ok := records["configuration resolved"]
	if !ok || source["component"] != "config" {
		t.Fatalf("missing config record in %q", errOut)
	}
	if source["config_found"] != false || source["correlation_id"] != id {
		t.Fatalf("unexpected config record: %v", source)
	}
	if path, _ := source["config_path"].(string); !strings.HasSuffix(path, filepath.Join(".config", "wordstat", "config.toml")) {
		t.Fatalf("unexpected config path: %v", source["config_path"])
	}
}

func TestFailureMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{textstats.ErrEmptyInput, "Error: Empty text provided"},
		{textstats.ErrNoWords, "Error: No valid words found in the text"},
		{context.Canceled, "\nProgram interrupted by user"},
		{errors.New("disk on fire"), "\nError: disk on fire"},
	}
	for _, tc := range tests {
		if got := failureMessage(tc.err); got != tc.want {
			t.Fatalf("failureMessage(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
