// Package i18n translates user-facing text. English strings are the message
// keys; other languages are registered in the default x/text catalog.
package i18n

import (
	"math/rand"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{
	language.English,
	language.Vietnamese,
}

var matcher = language.NewMatcher(supported)

func init() {
	for key, vi := range vietnamese {
		if err := message.SetString(language.Vietnamese, key, vi); err != nil {
			panic(err)
		}
	}
}

// Languages returns the supported language codes.
func Languages() []string {
	out := make([]string, len(supported))
	for i, t := range supported {
		out[i] = t.String()
	}
	return out
}

// Supported reports whether code matches a supported language exactly.
func Supported(code string) bool {
	for _, l := range Languages() {
		if l == code {
			return true
		}
	}
	return false
}

type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a translator for the closest supported language to code.
// Unknown codes fall back to English.
func New(code string) *Translator {
	tag := language.English
	if parsed, err := language.Parse(code); err == nil {
		_, idx, conf := matcher.Match(parsed)
		if conf != language.No {
			tag = supported[idx]
		}
	}
	return &Translator{tag: tag, printer: message.NewPrinter(tag)}
}

func (t *Translator) Language() string {
	return t.tag.String()
}

// T formats the message registered for key in the translator's language.
func (t *Translator) T(key string, args ...interface{}) string {
	return t.printer.Sprintf(key, args...)
}

// Quote returns motivational quote i, wrapping around the list.
func (t *Translator) Quote(i int) string {
	if i < 0 {
		i = -i
	}
	return t.T(quotes[i%len(quotes)])
}

// RandomQuote picks a quote with r, or the global source when r is nil.
func (t *Translator) RandomQuote(r *rand.Rand) string {
	if r == nil {
		return t.Quote(rand.Intn(len(quotes)))
	}
	return t.Quote(r.Intn(len(quotes)))
}

// QuoteCount is the number of motivational quotes.
func QuoteCount() int {
	return len(quotes)
}
