package main

import (
	"regexp"
	"strings"

	"github.com/spf13/pflag"
)

var negativeNumberPattern = regexp.MustCompile(`^-\d+$|^-\d*\.\d+$`)

// protectDashArguments moves arguments that start with "-" but read as text
// behind a "--" terminator so the flag parser leaves them alone. An argument
// is text when it holds a space or is a negative number, unless it names one
// of the command's flags ("--top=3 x", "-c my.toml").
func protectDashArguments(flags *pflag.FlagSet, args []string) []string {
	var options, literal []string
	for i, arg := range args {
		if arg == "--" {
			literal = append(literal, args[i+1:]...)
			break
		}
		if looksLikeText(flags, arg) {
			literal = append(literal, arg)
			continue
		}
		options = append(options, arg)
	}
	if len(literal) == 0 {
		return args
	}
	out := make([]string, 0, len(options)+1+len(literal))
	out = append(out, options...)
	out = append(out, "--")
	return append(out, literal...)
}

func looksLikeText(flags *pflag.FlagSet, arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	if name, _, ok := strings.Cut(strings.TrimLeft(arg, "-"), "="); ok && strings.HasPrefix(arg, "--") {
		if flags.Lookup(name) != nil {
			return false
		}
	}
	if arg[1] != '-' && flags.ShorthandLookup(arg[1:2]) != nil {
		return false
	}
	return negativeNumberPattern.MatchString(arg) || strings.Contains(arg, " ")
}
