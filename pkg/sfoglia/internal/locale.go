package internal

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	localeOnce sync.Once
	localizer  *i18n.Localizer
	localeTags []string
)

// SetLocales selects the preferred languages for built-in framework strings
// (dialog button labels and similar), most preferred first. Must be called
// before the first T call to take effect; English is always the fallback.
func SetLocales(tags ...string) {
	localeTags = tags
}

func initLocalizer() {
	localeOnce.Do(func() {
		bundle := i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			Logger().Warn("no embedded locales", "error", err)
		}
		for _, entry := range entries {
			if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
				Logger().Warn("failed to load locale file", "file", entry.Name(), "error", err)
			}
		}

		localizer = i18n.NewLocalizer(bundle, localeTags...)
	})
}

// T localizes a built-in framework string by message ID, using fallback when
// no translation is available.
func T(id, fallback string) string {
	initLocalizer()

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil {
		return fallback
	}
	return msg
}
