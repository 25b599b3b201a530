package sfoglia

import "sort"

// Theme is a named, immutable collection of fully resolved styles plus the
// variables the theme file declared. Themes are built by the cascade resolver
// at load time (see ParseTheme) or assembled directly by application code.
type Theme struct {
	name      string
	styles    map[string]Style
	variables map[string]any
	root      string
}

// NewTheme assembles a Theme from already-resolved styles. The maps are
// copied; the Theme never shares mutable state with the caller.
func NewTheme(name string, styles map[string]Style, variables map[string]any, root string) *Theme {
	t := &Theme{
		name:      name,
		styles:    make(map[string]Style, len(styles)),
		variables: make(map[string]any, len(variables)),
		root:      root,
	}
	for k, v := range styles {
		t.styles[k] = v
	}
	for k, v := range variables {
		t.variables[k] = v
	}
	return t
}

// Name returns the theme's unique registry key.
func (t *Theme) Name() string {
	return t.name
}

// Root returns the root selector name, or "" if none was declared.
func (t *Theme) Root() string {
	return t.root
}

// Style returns the resolved style for an exact selector match.
func (t *Theme) Style(selector string) (Style, bool) {
	s, ok := t.styles[selector]
	return s, ok
}

// Get returns the resolved style for a selector, falling back to the theme's
// root style when the exact selector is absent. The second return reports
// whether either lookup succeeded.
func (t *Theme) Get(selector string) (Style, bool) {
	if s, ok := t.styles[selector]; ok {
		return s, true
	}
	if t.root != "" {
		if s, ok := t.styles[t.root]; ok {
			return s, true
		}
	}
	return Style{}, false
}

// Variable returns the raw value bound to a theme variable name.
func (t *Theme) Variable(name string) (any, bool) {
	v, ok := t.variables[name]
	return v, ok
}

// StyleNames returns the declared selector names in sorted order.
func (t *Theme) StyleNames() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VariableNames returns the declared variable names in sorted order.
func (t *Theme) VariableNames() []string {
	names := make([]string, 0, len(t.variables))
	for name := range t.variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
