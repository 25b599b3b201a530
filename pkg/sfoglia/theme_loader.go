package sfoglia

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mvalenti/sfoglia/pkg/sfoglia/constants"
)

// themeFile is the on-disk theme descriptor shape.
//
// Theme files are TOML documents:
//
//	name = "light"
//	root = "window"
//
//	[variables]
//	accent = "#0F345E"
//
//	[styles.window]
//	background_color = "$accent"
//	border_width = 2
//
//	[styles."window>caption"]
//	background_color = "#FFFFFF"
//
// A string attribute value beginning with "$" is replaced by the variable it
// names. A ">" in a selector makes the selector with the last segment removed
// its parent; every other selector implicitly inherits from the declared root.
type themeFile struct {
	Name      string                    `toml:"name"`
	Root      string                    `toml:"root"`
	Variables map[string]any            `toml:"variables"`
	Styles    map[string]map[string]any `toml:"styles"`
}

// LoadTheme reads and resolves a theme descriptor file. Loading is
// all-or-nothing: any resolution error aborts the load and nothing is
// registered anywhere.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sfoglia: read theme file: %w", err)
	}
	theme, err := ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return theme, nil
}

// ParseTheme decodes a TOML theme descriptor and resolves every declared
// selector through the cascade: variable substitution first, then the
// pointwise merge of the selector's resolved ancestor chain with its own
// attributes winning. Resolution is memoized, so each selector resolves at
// most once and the result is independent of declaration order.
func ParseTheme(data []byte) (*Theme, error) {
	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("sfoglia: decode theme file: %w", err)
	}

	if file.Name == "" {
		return nil, errors.New("sfoglia: invalid theme file: missing name")
	}
	if len(file.Styles) == 0 {
		return nil, errors.New("sfoglia: invalid theme file: a theme needs at least one style")
	}
	if file.Root != "" {
		if _, ok := file.Styles[file.Root]; !ok {
			return nil, &InvalidThemeRootError{Root: file.Root}
		}
	}

	r := &cascadeResolver{
		root:      file.Root,
		variables: file.Variables,
		raw:       file.Styles,
		resolved:  make(map[string]Style, len(file.Styles)),
		visiting:  make(map[string]bool),
	}

	for selector := range file.Styles {
		if _, err := r.resolve(selector); err != nil {
			return nil, err
		}
	}

	return NewTheme(file.Name, r.resolved, file.Variables, file.Root), nil
}

// cascadeResolver resolves selectors recursively with a memo table. The
// visiting set guards against selector chains that refer back to themselves,
// which would otherwise recurse unboundedly.
type cascadeResolver struct {
	root      string
	variables map[string]any
	raw       map[string]map[string]any
	resolved  map[string]Style
	visiting  map[string]bool
	chain     []string
}

func (r *cascadeResolver) resolve(selector string) (Style, error) {
	if style, ok := r.resolved[selector]; ok {
		return style, nil
	}
	if r.visiting[selector] {
		return Style{}, &CyclicStyleInheritanceError{
			Selector: selector,
			Chain:    append(append([]string(nil), r.chain...), selector),
		}
	}
	r.visiting[selector] = true
	r.chain = append(r.chain, selector)
	defer func() {
		delete(r.visiting, selector)
		r.chain = r.chain[:len(r.chain)-1]
	}()

	attrs, err := r.substituteVariables(selector)
	if err != nil {
		return Style{}, err
	}

	base := DefaultStyle()
	if parent := r.parentOf(selector); parent != "" {
		if _, ok := r.raw[parent]; !ok {
			return Style{}, &MissingParentStyleError{Selector: selector, Parent: parent}
		}
		base, err = r.resolve(parent)
		if err != nil {
			return Style{}, err
		}
	}

	style, err := base.WithOverrides(attrs)
	if err != nil {
		var attrErr *InvalidStyleAttributeError
		if errors.As(err, &attrErr) {
			attrErr.Selector = selector
		}
		return Style{}, err
	}

	r.resolved[selector] = style
	return style, nil
}

// parentOf determines a selector's parent: the selector minus its last
// chain segment, or the declared root for top-level selectors. The root
// itself (and every selector when no root is declared) has no parent.
func (r *cascadeResolver) parentOf(selector string) string {
	if i := strings.LastIndex(selector, constants.SelectorDelimiter); i >= 0 {
		return selector[:i]
	}
	if selector != r.root {
		return r.root
	}
	return ""
}

func (r *cascadeResolver) substituteVariables(selector string) (Overrides, error) {
	attrs := make(Overrides, len(r.raw[selector]))
	for key, value := range r.raw[selector] {
		if ref, ok := value.(string); ok && strings.HasPrefix(ref, constants.VariableSigil) {
			name := strings.TrimPrefix(ref, constants.VariableSigil)
			bound, ok := r.variables[name]
			if !ok {
				return nil, &MissingVariableError{Variable: name, Selector: selector}
			}
			value = bound
		}
		attrs[key] = value
	}
	return attrs, nil
}
