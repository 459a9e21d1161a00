package i18n

import "golang.org/x/text/language"

// DefaultLanguage is used when no language can be negotiated.
const DefaultLanguage = "en"

// MatchLanguage negotiates the best supported language for an Accept-Language
// header. Matching follows BCP 47 rules, so "en-US" selects a supported "en"
// catalog. When nothing matches, defaultLang is returned.
func MatchLanguage(header string, supported []string, defaultLang string) string {
	if header == "" || len(supported) == 0 {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supported))
	langs := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		langs = append(langs, s)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}

	matcher := language.NewMatcher(tags)
	if _, idx, conf := matcher.Match(desired...); conf > language.No {
		return langs[idx]
	}
	return defaultLang
}
