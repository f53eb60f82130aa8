// Package locale resolves the month and weekday names printed on the sheet.
package locale

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/da"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pl"
)

// Default is the locale of the Winterberg calendar
const Default = "de"

var translators = map[string]func() locales.Translator{
	"da": da.New,
	"de": de.New,
	"en": en.New,
	"es": es.New,
	"fr": fr.New,
	"it": it.New,
	"nl": nl.New,
	"pl": pl.New,
}

// Names provides localized calendar names
type Names interface {
	Code() string
	Month(m time.Month) string
	Weekday(d time.Weekday) string
}

type translatorNames struct {
	code string
	t    locales.Translator
}

// Lookup returns the names of a locale. Region suffixes are ignored, so "de_DE" and
// "de-AT" resolve to "de".
func Lookup(code string) (Names, error) {
	base := strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(base, "_-"); i > 0 {
		base = base[:i]
	}

	newTranslator, ok := translators[base]
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q, choose one of: %s", code, strings.Join(Supported(), ", "))
	}
	return &translatorNames{code: base, t: newTranslator()}, nil
}

// Supported lists the known locale codes
func Supported() []string {
	codes := make([]string, 0, len(translators))
	for code := range translators {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (n *translatorNames) Code() string { return n.code }

// Month returns the full month name
func (n *translatorNames) Month(m time.Month) string {
	return n.t.MonthWide(m)
}

// Weekday returns the short weekday name without abbreviation dot
func (n *translatorNames) Weekday(d time.Weekday) string {
	return strings.TrimSuffix(n.t.WeekdayShort(d), ".")
}
