package i18n

import (
	"testing"
)

func TestCatalog_Translator(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		prefs    []string
		expected string
	}{
		{"no preference", nil, "de"},
		{"empty header", []string{""}, "de"},
		{"english header", []string{"en-US,en;q=0.9"}, "en"},
		{"austrian german", []string{"de-AT"}, "de"},
		{"unsupported language", []string{"fr-FR"}, "de"},
		{"weighted header prefers english", []string{"fr;q=0.9,en;q=0.8,de;q=0.1"}, "en"},
		{"query param wins over header", []string{"en", "de-DE,de;q=0.9"}, "en"},
		{"garbage header", []string{"!!!"}, "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Translator(tt.prefs...).Language()
			if got != tt.expected {
				t.Errorf("Translator(%v).Language() = %q, want %q", tt.prefs, got, tt.expected)
			}
		})
	}
}

func TestTranslator_Text(t *testing.T) {
	c := Default()
	de := c.Translator("de")
	en := c.Translator("en")

	if got := de.Text("service.winter-service"); got != "Winterdienst" {
		t.Errorf("de Text() = %q, want %q", got, "Winterdienst")
	}
	if got := en.Text("service.winter-service"); got != "Winter service" {
		t.Errorf("en Text() = %q, want %q", got, "Winter service")
	}
	if got := en.Text("contact.subject", "Winter service", "Erika"); got != "New enquiry: Winter service from Erika" {
		t.Errorf("en Text() with args = %q", got)
	}
	if got := en.Text("does.not.exist"); got != "does.not.exist" {
		t.Errorf("missing key = %q, want the key itself", got)
	}
}

func TestCatalogs_HaveSameKeys(t *testing.T) {
	c := Default()
	base := c.messages[c.tags[0]]

	for tag, msgs := range c.messages {
		for key := range base {
			if _, ok := msgs[key]; !ok {
				t.Errorf("catalog %s is missing key %q", tag, key)
			}
		}
		for key := range msgs {
			if _, ok := base[key]; !ok {
				t.Errorf("catalog %s has key %q not present in the default catalog", tag, key)
			}
		}
	}
}

func TestLoad_UnknownDefault(t *testing.T) {
	if _, err := Load("fr"); err == nil {
		t.Error("Load(\"fr\") expected error, got nil")
	}
	if _, err := Load("not a tag!"); err == nil {
		t.Error("Load with invalid tag expected error, got nil")
	}
}

func TestCatalog_Languages(t *testing.T) {
	c, err := Load("en")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	langs := c.Languages()
	if len(langs) != 2 || langs[0] != "en" {
		t.Errorf("Languages() = %v, want en first of two", langs)
	}
	if got := c.Translator("fr").Language(); got != "en" {
		t.Errorf("fallback language = %q, want en", got)
	}
}
