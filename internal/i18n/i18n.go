// Package i18n loads the embedded message catalogs and negotiates the
// response language from client preferences.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

// DefaultLanguage is used when no preference matches a catalog
const DefaultLanguage = "de"

// Catalog holds the messages of every supported language
type Catalog struct {
	tags     []language.Tag
	matcher  language.Matcher
	messages map[language.Tag]map[string]string
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the catalog with German as the fallback language.
// The catalogs are compiled into the binary, so a load failure is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(DefaultLanguage)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load reads all embedded catalogs. defaultLang must name one of them and
// becomes the fallback for unmatched preferences and missing keys.
func Load(defaultLang string) (*Catalog, error) {
	fallback, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("invalid default language %q: %w", defaultLang, err)
	}

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locales: %w", err)
	}

	c := &Catalog{
		messages: make(map[language.Tag]map[string]string, len(entries)),
	}

	var others []language.Tag
	found := false
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".json")
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("invalid locale file %s: %w", entry.Name(), err)
		}

		data, err := locales.ReadFile(path.Join("locales", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		var msgs map[string]string
		if err := json.Unmarshal(data, &msgs); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", entry.Name(), err)
		}
		c.messages[tag] = msgs

		if tag == fallback {
			found = true
			continue
		}
		others = append(others, tag)
	}

	if !found {
		return nil, fmt.Errorf("no catalog for default language %q", defaultLang)
	}

	// The first tag is what the matcher returns when nothing matches
	c.tags = append([]language.Tag{fallback}, others...)
	c.matcher = language.NewMatcher(c.tags)

	return c, nil
}

// Languages returns the supported languages, fallback first
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.String()
	}
	return out
}

// Translator picks a language from the given preferences. Each preference is
// either a bare tag ("en") or an Accept-Language header value. Earlier
// preferences win over later ones.
func (c *Catalog) Translator(prefs ...string) *Translator {
	var desired []language.Tag
	for _, p := range prefs {
		if p == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		desired = append(desired, tags...)
	}

	_, index, _ := c.matcher.Match(desired...)
	tag := c.tags[index]

	return &Translator{
		tag:      tag,
		messages: c.messages[tag],
		fallback: c.messages[c.tags[0]],
	}
}

// Translator resolves message keys in a single language
type Translator struct {
	tag      language.Tag
	messages map[string]string
	fallback map[string]string
}

// Language returns the BCP 47 tag of the selected language
func (t *Translator) Language() string {
	return t.tag.String()
}

// Text returns the message for key, formatted with args when given.
// Missing keys fall back to the default language and then to the key itself.
func (t *Translator) Text(key string, args ...any) string {
	msg, ok := t.messages[key]
	if !ok {
		msg, ok = t.fallback[key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
