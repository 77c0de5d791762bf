package i18n

import (
	"embed"

	"nynf/internal/errors"

	"gopkg.in/yaml.v3"
)

//go:embed en.yaml hi.yaml
var catalogFS embed.FS

// DefaultLanguage is used when no preference has been stored
const DefaultLanguage = "en"

// Catalog is a static key/value lookup for one language
type Catalog struct {
	lang     string
	messages map[string]string
	fallback map[string]string
}

// Load loads the catalog for the given language code, falling back to
// English for unknown codes and missing keys.
func Load(lang string) (*Catalog, error) {
	fallback, err := loadMessages(DefaultLanguage)
	if err != nil {
		return nil, err
	}

	messages := fallback
	if lang != DefaultLanguage {
		if m, err := loadMessages(lang); err == nil {
			messages = m
		} else {
			lang = DefaultLanguage
		}
	}

	return &Catalog{lang: lang, messages: messages, fallback: fallback}, nil
}

func loadMessages(lang string) (map[string]string, error) {
	data, err := catalogFS.ReadFile(lang + ".yaml")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfiguration,
			"failed to read message catalog for "+lang)
	}

	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfiguration,
			"failed to parse message catalog for "+lang)
	}
	return messages, nil
}

// Language returns the resolved language code
func (c *Catalog) Language() string {
	return c.lang
}

// T returns the message for key, falling back to English, then to the key
func (c *Catalog) T(key string) string {
	if msg, ok := c.messages[key]; ok {
		return msg
	}
	if msg, ok := c.fallback[key]; ok {
		return msg
	}
	return key
}
