package i18n

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/payform/pkg/validator"
)

// Translator resolves dot-separated message keys to templates per language.
type Translator struct {
	mu            sync.RWMutex
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when a requested one has no catalog.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithoutKeyFallback makes missing translations resolve to an empty string
// instead of the key itself.
func WithoutKeyFallback() Option {
	return func(t *Translator) {
		t.fallbackToKey = false
	}
}

// NewTranslator loads catalogs from the adapter and returns a ready Translator.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, fmt.Errorf("translation adapter is nil")
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, catalog := range translations {
		if lang == "" {
			return nil, fmt.Errorf("empty language code in translations")
		}
		if catalog == nil {
			return nil, fmt.Errorf("nil catalog for language %q", lang)
		}
	}

	t.translations = translations
	return t, nil
}

// Default returns a Translator loaded with the built-in English catalog.
func Default(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, &MapAdapter{Data: DefaultCatalog()}, options...)
}

// SupportedLanguages returns the language codes with a loaded catalog, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation checks whether a template exists for the language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	catalog, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(catalog, key)
	return ok
}

// T translates a key for the given language. Extra arguments are key-value
// pairs substituted into %{name} placeholders:
//
//	t.T("en", "validation.required", "field", "card_number")
//
// Lookups fall back to the default language's catalog, then to the key itself
// unless WithoutKeyFallback was set.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.template(lang, key); ok {
		return substitute(tmpl, args)
	}
	if lang != t.defaultLang {
		if tmpl, ok := t.template(t.defaultLang, key); ok {
			return substitute(tmpl, args)
		}
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// TranslateErrors renders every validation error through the catalog for
// lang, grouped by field name in the order the errors occurred.
func (t *Translator) TranslateErrors(lang string, errs validator.ValidationErrors) map[string][]string {
	if len(errs) == 0 {
		return nil
	}

	out := make(map[string][]string, len(errs))
	for _, e := range errs {
		keys := make([]string, 0, len(e.TranslationValues))
		for k := range e.TranslationValues {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		args := make([]string, 0, len(keys)*2)
		for _, k := range keys {
			args = append(args, k, fmt.Sprint(e.TranslationValues[k]))
		}

		out[e.Field] = append(out[e.Field], t.T(lang, e.TranslationKey, args...))
	}
	return out
}

func (t *Translator) template(lang, key string) (string, bool) {
	catalog, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := lookup(catalog, key)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// lookup traverses a nested catalog using dot-separated keys, so
// "validation.card_number" reads m["validation"]["card_number"].
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		nextMap, ok := next.(map[string]any)
		if !ok {
			// YAML decoders may produce any-keyed maps for nested levels.
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}
			nextMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					nextMap[ks] = v
				}
			}
		}
		current = nextMap
	}

	return nil, false
}

// paramRegex finds named parameters written as %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders with values from key-value pairs.
// An odd trailing argument is ignored; unknown placeholders stay as written.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
