package i18n

// DefaultCatalog returns the built-in English templates for every validation
// message key the fields package emits. Callers with their own catalogs can
// use these as a starting point.
func DefaultCatalog() map[string]map[string]any {
	return map[string]map[string]any{
		"en": {
			"validation": map[string]any{
				"required":          "Please fill in the %{field} field.",
				"card_number":       "The credit card number you entered is invalid.",
				"verification_code": "The verification value you entered is invalid.",
				"expiry_month":      "Please enter a valid month.",
				"expiry_year":       "Please enter a valid year.",
				"date_passed":       "This expiry date has passed.",
			},
		},
	}
}
