// Package flagx splits a command line between independent flag consumers,
// so the config-file flag can be read before the rest of the flags are
// parsed against the loaded values.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the flags named in allowed, together with their
// values. Both "-f value" and "-f=value" forms are recognised; a token that
// starts with '-' is never taken as a value.
func FilterArgs(args []string, allowed []string) []string {
	return split(args, allowed, true)
}

// DropArgs is the complement of FilterArgs: it removes the flags named in
// drop (and their values) and keeps everything else.
func DropArgs(args []string, drop []string) []string {
	return split(args, drop, false)
}

func split(args []string, names []string, keep bool) []string {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		name, _, hasValue := strings.Cut(arg, "=")
		if !strings.HasPrefix(arg, "-") {
			hasValue = false
			name = arg
		}
		_, match := set[name]

		group := []string{arg}
		if match && !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			group = append(group, args[i+1])
			i++
		}

		if match == keep {
			out = append(out, group...)
		}
	}
	return out
}

// ConfigPath returns the value of -c / -config in args, or "" if neither is
// set. When both are present the last one wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, ConfigFlags))

	return path
}

// ConfigFlags are the spellings of the config-file flag.
var ConfigFlags = []string{"-c", "-config", "--c", "--config"}
