package main

import "strings"

// expandMultiValueArgs rewrites "--flag a b c" into "--flag a --flag b --flag c"
// for the named flags, so list flags accept space-separated values.
// Values end at the next argument starting with "-".
func expandMultiValueArgs(args []string, names []string) []string {
	multi := make(map[string]bool, len(names))
	for _, n := range names {
		multi["--"+n] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		out = append(out, arg)
		if arg == "--" {
			return append(out, args[i+1:]...)
		}
		if !multi[arg] {
			continue
		}
		first := true
		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			if !first {
				out = append(out, arg)
			}
			out = append(out, args[i])
			first = false
		}
	}
	return out
}
