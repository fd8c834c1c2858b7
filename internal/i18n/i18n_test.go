package i18n

import (
	"errors"
	"testing"
)

type memPrefs struct {
	values  map[string]string
	failGet bool
	failPut bool
}

func newMemPrefs() *memPrefs {
	return &memPrefs{values: make(map[string]string)}
}

func (m *memPrefs) Setting(key string) (string, bool, error) {
	if m.failGet {
		return "", false, errors.New("read failed")
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memPrefs) PutSetting(key, value string) error {
	if m.failPut {
		return errors.New("write failed")
	}
	m.values[key] = value
	return nil
}

func TestDefaultIsChinese(t *testing.T) {
	tr := New(nil, nil)

	if tr.Lang() != Chinese {
		t.Errorf("Lang() = %s, expected zh", tr.Lang())
	}
	if got := tr.T("stats.score"); got != "分数" {
		t.Errorf("T(stats.score) = %q, expected 分数", got)
	}
}

func TestUnknownKeyFallsBack(t *testing.T) {
	tr := New(nil, nil)

	if got := tr.T("no.such.key"); got != "no.such.key" {
		t.Errorf("T() = %q, expected the key itself", got)
	}
}

func TestUseDoesNotPersist(t *testing.T) {
	prefs := newMemPrefs()
	prefs.values[SettingKey] = "zh"
	tr := New(prefs, nil)

	tr.Use(English)

	if tr.Lang() != English {
		t.Errorf("Lang() = %s, expected en", tr.Lang())
	}
	if got := prefs.values[SettingKey]; got != "zh" {
		t.Errorf("stored language = %q, expected zh to be kept", got)
	}
}

func TestTogglePersists(t *testing.T) {
	prefs := newMemPrefs()
	tr := New(prefs, nil)

	if got := tr.Toggle(); got != English {
		t.Fatalf("Toggle() = %s, expected en", got)
	}
	if tr.T("game.over") != "Game Over!" {
		t.Errorf("T(game.over) = %q after toggle", tr.T("game.over"))
	}
	if prefs.values[SettingKey] != "en" {
		t.Errorf("Stored language = %q, expected en", prefs.values[SettingKey])
	}

	// A new translator picks the preference up.
	if New(prefs, nil).Lang() != English {
		t.Error("Stored preference was not loaded")
	}

	tr.Toggle()
	if prefs.values[SettingKey] != "zh" {
		t.Errorf("Stored language = %q, expected zh", prefs.values[SettingKey])
	}
}

func TestBrokenPrefsKeepDefault(t *testing.T) {
	prefs := newMemPrefs()
	prefs.values[SettingKey] = "klingon"
	if New(prefs, nil).Lang() != Chinese {
		t.Error("Unknown stored value should leave the default")
	}

	prefs.failGet = true
	if New(prefs, nil).Lang() != Chinese {
		t.Error("Failing prefs should leave the default")
	}

	prefs.failGet = false
	prefs.failPut = true
	tr := New(prefs, nil)
	if tr.Toggle() != English {
		t.Error("Toggle() should work even when saving fails")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		expected Lang
		wantErr  bool
	}{
		{"zh", Chinese, false},
		{"zh-Hans-CN", Chinese, false},
		{"en", English, false},
		{"en-GB", English, false},
		{"fr", "", true},
		{"!!", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrUnsupported) {
					t.Errorf("Parse(%q) error = %v, expected ErrUnsupported", tc.in, err)
				}
				return
			}
			if err != nil || got != tc.expected {
				t.Errorf("Parse(%q) = %s, %v; expected %s", tc.in, got, err, tc.expected)
			}
		})
	}
}

func TestCatalogsShareKeys(t *testing.T) {
	for key := range catalog[Chinese] {
		if _, ok := catalog[English][key]; !ok {
			t.Errorf("English catalog is missing %q", key)
		}
	}
	for key := range catalog[English] {
		if _, ok := catalog[Chinese][key]; !ok {
			t.Errorf("Chinese catalog is missing %q", key)
		}
	}
}
