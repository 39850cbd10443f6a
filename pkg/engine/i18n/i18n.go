// Package i18n holds the message catalog for user-facing text. Messages are
// looked up by key; unknown keys are returned unchanged.
package i18n

import (
	"embed"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is the catalog loaded by T
const DefaultLanguage = "en"

//go:embed locales/*/default.po
var locales embed.FS

var (
	once    sync.Once
	catalog *gotext.Po
)

// lookup is a function variable so vet does not treat T as a printf
// wrapper; keys are not format strings.
var lookup = (*gotext.Po).Get

// Load parses the embedded catalog for lang. A missing catalog yields an
// empty one, so every lookup falls back to its key.
func Load(lang string) *gotext.Po {
	po := gotext.NewPo()
	data, err := locales.ReadFile("locales/" + lang + "/default.po")
	if err == nil {
		po.Parse(data)
	}
	return po
}

// T translates key in the default language and formats it with args
func T(key string, args ...interface{}) string {
	once.Do(func() {
		catalog = Load(DefaultLanguage)
	})
	return lookup(catalog, key, args...)
}
