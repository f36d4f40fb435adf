package main

import "strings"

// pflag shorthands are a single letter, so the two-letter short options are
// rewritten to their long form before parsing.
var legacyFlags = map[string]string{
	"-wt": "--width",
	"-ht": "--height",
}

func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		name, value, hasValue := strings.Cut(arg, "=")
		if long, ok := legacyFlags[name]; ok {
			arg = long
			if hasValue {
				arg += "=" + value
			}
		}
		out = append(out, arg)
	}
	return out
}
