package sfoglia

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions.
var (
	// ErrWindowNotFound indicates a reorder operation referenced a window
	// the stack does not hold. Removal of an absent window is a no-op, not
	// an error; only operations that need the window's position report this.
	ErrWindowNotFound = errors.New("sfoglia: window not found in stack")
)

// ThemeNotFoundError indicates a lookup of an unregistered theme name.
type ThemeNotFoundError struct {
	Name string
}

func (e *ThemeNotFoundError) Error() string {
	return fmt.Sprintf("sfoglia: theme %q not found", e.Name)
}

// MissingVariableError indicates a style attribute referenced a theme
// variable that the theme file does not declare.
type MissingVariableError struct {
	Variable string // Variable name without the sigil
	Selector string // Selector whose attribute referenced it
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("sfoglia: variable %q referenced by style %q is not declared", e.Variable, e.Selector)
}

// MissingParentStyleError indicates a selector's declared or implicit parent
// is absent from the theme file.
type MissingParentStyleError struct {
	Selector string
	Parent   string
}

func (e *MissingParentStyleError) Error() string {
	return fmt.Sprintf("sfoglia: parent style %q not found for style %q", e.Parent, e.Selector)
}

// InvalidThemeRootError indicates the declared root selector does not itself
// appear among the theme's styles.
type InvalidThemeRootError struct {
	Root string
}

func (e *InvalidThemeRootError) Error() string {
	return fmt.Sprintf("sfoglia: root style %q not found in theme styles", e.Root)
}

// InvalidStyleAttributeError indicates an unknown or type-mismatched
// attribute in a style block or override set.
type InvalidStyleAttributeError struct {
	Attribute string
	Selector  string // Empty when the attribute came from a programmatic override
	Err       error  // Underlying cause, if any (e.g. a color parse failure)
}

func (e *InvalidStyleAttributeError) Error() string {
	msg := fmt.Sprintf("sfoglia: invalid style attribute %q", e.Attribute)
	if e.Selector != "" {
		msg += fmt.Sprintf(" in style %q", e.Selector)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidStyleAttributeError) Unwrap() error {
	return e.Err
}

// CyclicStyleInheritanceError indicates a selector's parent chain refers back
// to itself. The chain lists the selectors visited, ending at the repeat.
type CyclicStyleInheritanceError struct {
	Selector string
	Chain    []string
}

func (e *CyclicStyleInheritanceError) Error() string {
	return fmt.Sprintf("sfoglia: cyclic style inheritance at %q (%s)", e.Selector, strings.Join(e.Chain, " -> "))
}

// IsThemeNotFound checks if an error indicates an unregistered theme name.
func IsThemeNotFound(err error) bool {
	var tnf *ThemeNotFoundError
	return errors.As(err, &tnf)
}
