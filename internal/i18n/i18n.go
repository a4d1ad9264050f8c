// Package i18n switches the page between English and French.
package i18n

import (
	"errors"
	"regexp"

	"go.uber.org/zap"

	"github.com/NetroxTTV/NetroxTTV.github.io/internal/config"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/page"
	"github.com/NetroxTTV/NetroxTTV.github.io/internal/prefs"
)

type Language string

const (
	English Language = "en"
	French  Language = "fr"
)

var ErrUnknownLanguage = errors.New("unknown language")

func Parse(s string) (Language, error) {
	switch Language(s) {
	case English, French:
		return Language(s), nil
	}
	return English, ErrUnknownLanguage
}

func (l Language) Other() Language {
	if l == English {
		return French
	}
	return English
}

// ButtonLabel is what the toggle button shows: the language it switches to.
func (l Language) ButtonLabel() string {
	if l == English {
		return "FR"
	}
	return "EN"
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Translator owns the current language and rewrites every element that
// carries both language variants.
type Translator struct {
	doc   *page.Document
	store prefs.Store
	log   *zap.Logger
	lang  Language
}

func NewTranslator(doc *page.Document, store prefs.Store, log *zap.Logger) *Translator {
	return &Translator{doc: doc, store: store, log: log, lang: English}
}

func (t *Translator) Language() Language { return t.lang }

// Restore loads the saved preference, labels the buttons and, when the
// saved language is not English, applies it.
func (t *Translator) Restore() {
	t.lang = English
	if saved, ok := t.store.Get(config.PreferredLanguageKey); ok {
		lang, err := Parse(saved)
		if err != nil {
			t.log.Debug("ignoring stored language", zap.String("value", saved))
		}
		t.lang = lang
	}
	t.updateButtons()
	if t.lang != English {
		t.Apply()
	}
}

// Toggle switches language, relabels, rewrites and persists.
func (t *Translator) Toggle() {
	t.lang = t.lang.Other()
	t.updateButtons()
	t.Apply()
	if err := t.store.Set(config.PreferredLanguageKey, string(t.lang)); err != nil {
		t.log.Debug("language preference not saved", zap.Error(err))
	}
}

// Apply rewrites every paired element for the current language. Markup in
// either variant means the content is set as HTML.
func (t *Translator) Apply() {
	for _, e := range t.doc.WithAttrs(page.AttrEN, page.AttrFR) {
		en, _ := e.Attr(page.AttrEN)
		fr, _ := e.Attr(page.AttrFR)
		text := en
		if t.lang == French {
			text = fr
		}
		if tagPattern.MatchString(en) || tagPattern.MatchString(fr) {
			e.SetHTML(text)
		} else {
			e.SetText(text)
		}
	}
}

// Pick returns en or fr for the current language.
func (t *Translator) Pick(en, fr string) string {
	if t.lang == French {
		return fr
	}
	return en
}

func (t *Translator) updateButtons() {
	for _, id := range []string{page.IDLangButton, page.IDLangMobile} {
		if b := t.doc.ByID(id); b != nil {
			b.SetText(t.lang.ButtonLabel())
		}
	}
}
