// Package i18n translates the error kinds surfaced to users.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported languages, the first one is the fallback.
var Supported = []language.Tag{language.English, language.SimplifiedChinese}

var (
	matcher  = language.NewMatcher(Supported)
	messages = newCatalog()
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, translations := range translations {
		for tag, msg := range translations {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Translator formats messages in a single language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// NewTranslator returns a Translator for the supported language best
// matching lang, a BCP 47 tag like "en" or "zh-CN".
func NewTranslator(lang string) Translator {
	_, index, _ := matcher.Match(language.Make(lang))
	tag := Supported[index]
	return Translator{tag, message.NewPrinter(tag, message.Catalog(messages))}
}

// Language returns the language messages are translated to.
func (t Translator) Language() language.Tag {
	return t.tag
}

// Translate returns the message for key. Keys without translation are
// returned as they are.
func (t Translator) Translate(key string, args ...interface{}) string {
	return t.printer.Sprintf(key, args...)
}
