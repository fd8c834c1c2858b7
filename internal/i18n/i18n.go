// Package i18n provides the bilingual (Chinese/English) message catalog and
// the persisted language preference.
package i18n

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
)

// Lang is a supported display language.
type Lang string

const (
	Chinese Lang = "zh"
	English Lang = "en"
)

// DefaultLang is used when no preference is stored.
const DefaultLang = Chinese

// SettingKey is the preference key the language is stored under.
const SettingKey = "language"

// ErrUnsupported is returned for language tags with no matching catalog.
var ErrUnsupported = errors.New("i18n: unsupported language")

var (
	supported = []Lang{Chinese, English}
	matcher   = language.NewMatcher([]language.Tag{language.Chinese, language.English})
)

// Parse resolves a BCP 47 tag such as "en-US" or "zh-Hans" to a supported
// language.
func Parse(s string) (Lang, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	return supported[idx], nil
}

// Tag returns the BCP 47 tag of the language.
func (l Lang) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.Chinese
}

// Prefs is the key/value store holding the language preference.
type Prefs interface {
	Setting(key string) (string, bool, error)
	PutSetting(key, value string) error
}

// Translator looks up messages in the current language.
// It is not safe for concurrent use.
type Translator struct {
	lang   Lang
	prefs  Prefs
	logger *log.Logger
}

// New creates a translator. The stored preference is read from prefs when
// present; an unreadable or unknown value leaves DefaultLang. Both prefs and
// logger may be nil.
func New(prefs Prefs, logger *log.Logger) *Translator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &Translator{lang: DefaultLang, prefs: prefs, logger: logger}
	if prefs == nil {
		return t
	}

	value, ok, err := prefs.Setting(SettingKey)
	switch {
	case err != nil:
		logger.Warn("could not load language preference", "error", err)
	case ok:
		if lang, err := Parse(value); err == nil {
			t.lang = lang
		} else {
			logger.Warn("ignoring stored language", "value", value)
		}
	}
	return t
}

// Lang returns the current language.
func (t *Translator) Lang() Lang {
	return t.lang
}

// T returns the message for key, or key itself if no translation exists.
func (t *Translator) T(key string) string {
	if msg, ok := catalog[t.lang][key]; ok {
		return msg
	}
	return key
}

// Use switches to lang for this session only. The stored preference is left
// as it was.
func (t *Translator) Use(lang Lang) {
	t.lang = lang
}

// Set switches to lang and persists the choice.
func (t *Translator) Set(lang Lang) {
	t.lang = lang
	if t.prefs == nil {
		return
	}
	if err := t.prefs.PutSetting(SettingKey, string(lang)); err != nil {
		t.logger.Warn("could not save language preference", "error", err)
	}
}

// Toggle flips between Chinese and English and returns the new language.
func (t *Translator) Toggle() Lang {
	if t.lang == Chinese {
		t.Set(English)
	} else {
		t.Set(Chinese)
	}
	return t.lang
}
