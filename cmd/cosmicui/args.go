package main

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var negativeNumber = regexp.MustCompile(`^-(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// execute runs root with args after moving negative numbers that are not flag
// values behind a "--", so "resolve -0.5" reads -0.5 as a position rather
// than a shorthand flag.
func execute(root *cobra.Command, args []string) error {
	root.SetArgs(positionalNegatives(root, args))
	return root.Execute()
}

func positionalNegatives(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil || cmd == nil {
		cmd = root
	}

	out := make([]string, 0, len(args)+1)
	var numbers, rest []string
	for i, arg := range args {
		if arg == "--" {
			rest = args[i+1:]
			break
		}
		if negativeNumber.MatchString(arg) && (i == 0 || !takesValue(cmd, args[i-1])) {
			numbers = append(numbers, arg)
			continue
		}
		out = append(out, arg)
	}
	if len(numbers) == 0 {
		return args
	}

	out = append(out, "--")
	out = append(out, numbers...)
	return append(out, rest...)
}

// takesValue reports whether token is a flag on cmd that consumes the next argument.
func takesValue(cmd *cobra.Command, token string) bool {
	if !strings.HasPrefix(token, "-") || token == "--" || strings.Contains(token, "=") {
		return false
	}

	flags, inherited := cmd.Flags(), cmd.InheritedFlags()
	if name, ok := strings.CutPrefix(token, "--"); ok {
		f := flags.Lookup(name)
		if f == nil {
			f = inherited.Lookup(name)
		}
		return f != nil && f.NoOptDefVal == ""
	}

	short := token[len(token)-1:]
	f := flags.ShorthandLookup(short)
	if f == nil {
		f = inherited.ShorthandLookup(short)
	}
	return f != nil && f.NoOptDefVal == ""
}
