package i18n

import (
	"context"
	"fmt"
	"os"
)

// TranslationAdapter defines how translation catalogs are loaded. The outer
// map key is the language code, the inner map is the nested catalog.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalogs from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter reads one catalog file through a Parser.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil when parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a == nil || a.parser == nil || a.path == "" {
		return nil, fmt.Errorf("file adapter is not configured")
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, fmt.Errorf("read translations file %s: %w", a.path, err)
	}
	return a.parser.Parse(data)
}
