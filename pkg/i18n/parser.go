package i18n

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parser decodes raw catalog file content into per-language catalogs.
type Parser interface {
	Parse(data []byte) (map[string]map[string]any, error)
}

// YAMLParser parses catalogs written as
//
//	en:
//	  validation:
//	    card_number: The credit card number you entered is invalid.
type YAMLParser struct{}

func (YAMLParser) Parse(data []byte) (map[string]map[string]any, error) {
	var out map[string]map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse yaml translations: %w", err)
	}
	if out == nil {
		out = make(map[string]map[string]any)
	}
	return out, nil
}

// JSONParser parses catalogs in the equivalent JSON shape.
type JSONParser struct{}

func (JSONParser) Parse(data []byte) (map[string]map[string]any, error) {
	var out map[string]map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse json translations: %w", err)
	}
	if out == nil {
		out = make(map[string]map[string]any)
	}
	return out, nil
}
