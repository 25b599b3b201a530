package sfoglia

import (
	"sort"
	"sync"

	"go.uber.org/atomic"
)

// ThemeStore owns the registered themes and the active-theme pointer. The
// toolkit is single-threaded, so the store does no locking; the generation
// counter exists so the frame loop can coalesce theme switches into one
// synthetic theme-changed dispatch per frame.
type ThemeStore struct {
	themes     map[string]*Theme
	current    *Theme
	generation atomic.Uint64
}

// NewThemeStore creates an empty theme store. Most applications use the
// process-wide store returned by Themes instead.
func NewThemeStore() *ThemeStore {
	return &ThemeStore{
		themes: make(map[string]*Theme),
	}
}

var (
	defaultStoreOnce sync.Once
	defaultStore     *ThemeStore
)

// Themes returns the process-wide theme store. It is created on first use
// and populated by Application init (or by the embedding code directly).
func Themes() *ThemeStore {
	defaultStoreOnce.Do(func() {
		defaultStore = NewThemeStore()
	})
	return defaultStore
}

// Add registers a theme under its name, replacing any previous theme with
// the same name, and returns it. Replacing the active theme keeps it active
// and bumps the change generation so live bindings refresh.
func (s *ThemeStore) Add(theme *Theme) *Theme {
	s.themes[theme.Name()] = theme
	if s.current != nil && s.current.Name() == theme.Name() {
		s.current = theme
		s.generation.Inc()
	}
	return theme
}

// Load reads, resolves, and registers a theme file. Registration is
// all-or-nothing: a resolution error leaves the store untouched.
func (s *ThemeStore) Load(path string) (*Theme, error) {
	theme, err := LoadTheme(path)
	if err != nil {
		return nil, err
	}
	return s.Add(theme), nil
}

// LoadData resolves and registers a theme from in-memory descriptor bytes.
func (s *ThemeStore) LoadData(data []byte) (*Theme, error) {
	theme, err := ParseTheme(data)
	if err != nil {
		return nil, err
	}
	return s.Add(theme), nil
}

// Use sets the active theme and bumps the change generation.
func (s *ThemeStore) Use(name string) error {
	theme, ok := s.themes[name]
	if !ok {
		return &ThemeNotFoundError{Name: name}
	}
	s.current = theme
	s.generation.Inc()
	return nil
}

// Get returns the registered theme for a name.
func (s *ThemeStore) Get(name string) (*Theme, error) {
	theme, ok := s.themes[name]
	if !ok {
		return nil, &ThemeNotFoundError{Name: name}
	}
	return theme, nil
}

// GetOrDefault returns the registered theme for a name, or def when absent.
func (s *ThemeStore) GetOrDefault(name string, def *Theme) *Theme {
	if theme, ok := s.themes[name]; ok {
		return theme
	}
	return def
}

// Current returns the active theme, or nil if none has been activated yet.
// Calling any styled operation before activating a theme is a programmer
// error; bindings fall back to the engine default style.
func (s *ThemeStore) Current() *Theme {
	return s.current
}

// CurrentName returns the active theme's name, or "" if none is active.
func (s *ThemeStore) CurrentName() string {
	if s.current == nil {
		return ""
	}
	return s.current.Name()
}

// Remove deletes a registered theme. Removing the active theme leaves the
// active pointer on the removed theme until the next Use.
func (s *ThemeStore) Remove(name string) error {
	if _, ok := s.themes[name]; !ok {
		return &ThemeNotFoundError{Name: name}
	}
	delete(s.themes, name)
	return nil
}

// Names returns the registered theme names in sorted order.
func (s *ThemeStore) Names() []string {
	names := make([]string, 0, len(s.themes))
	for name := range s.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generation returns a counter that increases every time the active theme
// changes (Use, or Add replacing the active theme). The frame loop compares
// it across frames to emit at most one theme-changed event per frame.
func (s *ThemeStore) Generation() uint64 {
	return s.generation.Load()
}
