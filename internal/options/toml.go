package options

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileDoc mirrors the fields a `.cstylerc` may set. Unset fields keep
// whatever the caller's base Options already had, so a project file
// layers defaults under explicit command-line flags rather than
// replacing them outright.
type fileDoc struct {
	Style string `toml:"style"`

	Indent struct {
		Mode   string `toml:"mode"`
		Length int    `toml:"length"`
	} `toml:"indent"`

	IndentScopes struct {
		Classes   bool `toml:"classes"`
		Switches  bool `toml:"switches"`
		Cases     bool `toml:"cases"`
		Namespaces bool `toml:"namespaces"`
	} `toml:"indent_scopes"`

	Padding struct {
		Oper       bool `toml:"oper"`
		ParenOut   bool `toml:"paren_out"`
		ParenIn    bool `toml:"paren_in"`
		UnpadParen bool `toml:"unpad_paren"`
	} `toml:"padding"`

	Brace struct {
		AttachClasses bool `toml:"attach_classes"`
		AddBrackets   bool `toml:"add_brackets"`
		RemoveBrackets bool `toml:"remove_brackets"`
	} `toml:"brace"`

	LineEnd string `toml:"lineend"`
}

// FindFile walks upward from startDir looking for .cstylerc, the same
// nearest-ancestor search `cmd/cstyle` uses to find a project manifest.
func FindFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ".cstylerc")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadFile reads a .cstylerc TOML document at path and applies it onto
// base, returning the merged Options.
func LoadFile(path string, base *Options) (*Options, error) {
	var doc fileDoc
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	merged := *base

	if doc.Style != "" {
		if s, ok := ParseStyle(doc.Style); ok {
			ApplyStyle(&merged, s)
		} else {
			return nil, fmt.Errorf("%s: unknown style %q", path, doc.Style)
		}
	}
	if doc.Indent.Mode != "" {
		if err := longOptions["indent"](&merged, doc.Indent.Mode); err != nil {
			return nil, fmt.Errorf("%s: indent.mode: %w", path, err)
		}
	}
	if doc.Indent.Length > 0 {
		merged.IndentLength = doc.Indent.Length
	}

	merged.IndentClasses = merged.IndentClasses || doc.IndentScopes.Classes
	merged.IndentSwitches = merged.IndentSwitches || doc.IndentScopes.Switches
	merged.IndentCases = merged.IndentCases || doc.IndentScopes.Cases
	merged.IndentNamespaces = merged.IndentNamespaces || doc.IndentScopes.Namespaces

	merged.PadOper = merged.PadOper || doc.Padding.Oper
	merged.ParenPad.Outside = merged.ParenPad.Outside || doc.Padding.ParenOut
	merged.ParenPad.Inside = merged.ParenPad.Inside || doc.Padding.ParenIn
	merged.UnpadParen = merged.UnpadParen || doc.Padding.UnpadParen

	merged.AttachClasses = merged.AttachClasses || doc.Brace.AttachClasses
	merged.AddBrackets = merged.AddBrackets || doc.Brace.AddBrackets
	merged.RemoveBrackets = merged.RemoveBrackets || doc.Brace.RemoveBrackets

	if doc.LineEnd != "" {
		if err := longOptions["lineend"](&merged, doc.LineEnd); err != nil {
			return nil, fmt.Errorf("%s: lineend: %w", path, err)
		}
	}

	return &merged, nil
}
