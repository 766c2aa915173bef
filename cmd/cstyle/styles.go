package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var styleDescriptions = []struct {
	name string
	desc string
}{
	{"allman", "break before every opening brace (a.k.a. ansi, bsd)"},
	{"java", "attach opening braces, indent classes, don't indent switches"},
	{"kr", "attach braces, don't attach class/namespace braces (a.k.a. k&r)"},
	{"stroustrup", "attach braces, don't break closing brackets"},
	{"whitesmith", "break braces, indent classes/switches/namespaces"},
	{"banner", "attach braces, indent classes/namespaces"},
	{"gnu", "break braces, indent classes, cap in-statement indent at 40"},
	{"linux", "break for function defs, attach otherwise; zero conditional indent"},
	{"horstmann", "run-in braces, indent classes/switches"},
	{"1tbs", "attach braces, force single-statement blocks into braces (a.k.a. otbs)"},
	{"google", "attach braces, indent modifiers, type-aligned pointers"},
	{"pico", "run-in braces, keep one-line blocks and statements"},
	{"lisp", "attach braces, keep one-line statements"},
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the named bracket styles and what they compose",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, s := range styleDescriptions {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", s.name, s.desc)
		}
		return nil
	},
}
