package sstring

import (
	"fmt"

	"github.com/samber/lo"
)

type (
	Language uint8

	Entry struct {
		Language Language `json:"language"`
		ID       int      `json:"id"`
		Text     string   `json:"text"`
	}

	// Table keeps entries in stored order, which decides the encoded bytes.
	Table struct {
		Entries []Entry `json:"entries"`
	}
)

const (
	EnglishUK Language = iota
	EnglishUS
	French
	German
	Spanish
	Italian
	Dutch
	Swedish
	Japanese
	Korean
	ChineseSimplified
	ChineseTraditional
	Language12
	Portuguese

	// End closes the entries of one string id.
	End Language = 0xFF
)

var languageNames = map[Language]string{
	EnglishUK:          "english_uk",
	EnglishUS:          "english_us",
	French:             "french",
	German:             "german",
	Spanish:            "spanish",
	Italian:            "italian",
	Dutch:              "dutch",
	Swedish:            "swedish",
	Japanese:           "japanese",
	Korean:             "korean",
	ChineseSimplified:  "chinese_simplified",
	ChineseTraditional: "chinese_traditional",
	Language12:         "language_12",
	Portuguese:         "portuguese",
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return fmt.Sprintf("language_%d", uint8(l))
}

func (l Language) MarshalText() ([]byte, error) {
	if l == End {
		return nil, fmt.Errorf("sstring.Language: end marker is not a language")
	}
	return []byte(l.String()), nil
}

func (l *Language) UnmarshalText(text []byte) error {
	if found, ok := lo.Invert(languageNames)[string(text)]; ok {
		*l = found
		return nil
	}
	var n uint8
	if _, err := fmt.Sscanf(string(text), "language_%d", &n); err != nil || Language(n) == End {
		return fmt.Errorf(`sstring.Language: unknown language "%s"`, text)
	}
	*l = Language(n)
	return nil
}

// Lookup returns the text of id in language.
func (t *Table) Lookup(id int, language Language) (string, bool) {
	entry, ok := lo.Find(t.Entries, func(entry Entry) bool {
		return entry.ID == id && entry.Language == language
	})
	return entry.Text, ok
}

// Strings returns every translation of id in stored order.
func (t *Table) Strings(id int) []Entry {
	return lo.Filter(t.Entries, func(entry Entry, _ int) bool {
		return entry.ID == id
	})
}
