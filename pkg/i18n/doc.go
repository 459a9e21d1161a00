// Package i18n resolves validation message keys into localized templates.
//
// The validator package attaches a TranslationKey such as
// "validation.card_number" to every field error; this package holds the
// per-language catalogs that map those keys to user-facing text. Catalogs are
// nested maps addressed by dot-separated keys, loaded through an adapter from
// an in-memory map or from YAML/JSON files, and templates substitute named
// placeholders written as %{name}.
//
// A built-in English catalog covers every key the fields package emits, so a
// Translator from Default is usable without any configuration. Language
// selection against an Accept-Language header goes through MatchLanguage.
//
// # Usage
//
//	t, err := i18n.Default(ctx)
//	lang := i18n.MatchLanguage(r.Header.Get("Accept-Language"), t.SupportedLanguages(), i18n.DefaultLanguage)
//	messages := t.TranslateErrors(lang, validator.ExtractValidationErrors(err))
package i18n
