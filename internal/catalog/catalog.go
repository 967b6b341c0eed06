// File: catalog.go
// Title: Style Catalog
// Description: Builds the naming style registry from the built-in styles and
//              the [styles.*] tables of the configuration, and reads the
//              template syntax from the [template] table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/msto63/casekit/core/config"
	ckerror "github.com/msto63/casekit/core/error"
	"github.com/msto63/casekit/utils/namecase"
	"github.com/msto63/casekit/utils/strtemplate"
)

// Style kinds accepted in the configuration
const (
	KindCamel     = "camel"
	KindSeparator = "separator"
)

// StylesKey is the configuration table holding custom styles
const StylesKey = "styles"

// StyleSpec is the configured form of a naming style
type StyleSpec struct {
	Name        string
	Kind        string
	Separator   string
	Transform   string
	Capitalized bool
	NonLetters  string
}

// Build creates the naming case described by the spec
func (s StyleSpec) Build() (namecase.NamingCase, error) {
	words, err := namecase.ParseWordHandler(s.Transform)
	if err != nil {
		return nil, s.wrap(err)
	}

	switch strings.ToLower(s.Kind) {
	case KindCamel:
		policy := namecase.AsLower
		if s.NonLetters != "" {
			if policy, err = namecase.ParseNonLetterPolicy(s.NonLetters); err != nil {
				return nil, s.wrap(err)
			}
		}
		nc, err := namecase.NewCamelCase(namecase.CamelOptions{
			Capitalized: s.Capitalized,
			NonLetters:  policy,
			Words:       words,
		})
		if err != nil {
			return nil, s.wrap(err)
		}
		return nc, nil

	case KindSeparator:
		nc, err := namecase.NewSeparatorCase(namecase.SeparatorOptions{
			Separator: s.Separator,
			Words:     words,
		})
		if err != nil {
			return nil, s.wrap(err)
		}
		return nc, nil
	}

	return nil, ckerror.Newf("style %q has unknown kind %q (want %s or %s)", s.Name, s.Kind, KindCamel, KindSeparator).
		WithCode(ckerror.CodeInvalidConfig).
		WithOperation("catalog.StyleSpec.Build").
		WithDetail("style", s.Name)
}

func (s StyleSpec) wrap(err error) error {
	return ckerror.Wrap(err, fmt.Sprintf("invalid style %q", s.Name)).
		WithOperation("catalog.StyleSpec.Build").
		WithDetail("style", s.Name)
}

// LoadStyles reads every [styles.<name>] table of cfg.
// A missing kind means separator when a separator is given, camel otherwise.
func LoadStyles(cfg *config.Config) []StyleSpec {
	names := cfg.Keys(StylesKey)
	specs := make([]StyleSpec, 0, len(names))

	for _, name := range names {
		prefix := StylesKey + "." + name + "."
		spec := StyleSpec{
			Name:        name,
			Kind:        cfg.GetString(prefix + "kind"),
			Separator:   cfg.GetString(prefix + "separator"),
			Transform:   cfg.GetString(prefix + "transform"),
			Capitalized: cfg.GetBool(prefix + "capitalized"),
			NonLetters:  cfg.GetString(prefix + "non_letters"),
		}
		if spec.Kind == "" {
			spec.Kind = KindCamel
			if spec.Separator != "" {
				spec.Kind = KindSeparator
			}
		}
		specs = append(specs, spec)
	}
	return specs
}

// NewRegistry returns a registry with the built-in styles plus the styles
// configured in cfg. A nil cfg yields the built-ins only.
func NewRegistry(cfg *config.Config) (*namecase.Registry, error) {
	registry := namecase.NewRegistry()
	if cfg == nil {
		return registry, nil
	}

	for _, spec := range LoadStyles(cfg) {
		nc, err := spec.Build()
		if err != nil {
			return nil, err
		}
		if err := registry.Register(spec.Name, nc); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// TemplateSyntax reads the [template] table. Unset keys keep the defaults,
// an empty escape disables escaping.
func TemplateSyntax(cfg *config.Config) (strtemplate.Syntax, error) {
	syntax := strtemplate.DefaultSyntax()
	if cfg == nil {
		return syntax, nil
	}

	syntax.Prefix = cfg.GetString("template.prefix", syntax.Prefix)
	syntax.Suffix = cfg.GetString("template.suffix", syntax.Suffix)

	if cfg.Has("template.escape") {
		escape := cfg.GetString("template.escape")
		switch utf8.RuneCountInString(escape) {
		case 0:
			syntax.Escape = 0
		case 1:
			syntax.Escape, _ = utf8.DecodeRuneInString(escape)
		default:
			return syntax, ckerror.Newf("template escape %q must be a single character", escape).
				WithCode(ckerror.CodeInvalidConfig).
				WithOperation("catalog.TemplateSyntax")
		}
	}

	if err := syntax.Validate(); err != nil {
		return syntax, err
	}
	return syntax, nil
}
