package blocks

import (
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-pagebuilder/internal/validation"
)

// localizedTextSchema matches either a plain string or a per-locale object.
var localizedTextSchema = map[string]any{
	"oneOf": []any{
		map[string]any{"type": "string"},
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"en": map[string]any{"type": "string"},
				"ar": map[string]any{"type": "string"},
			},
			"additionalProperties": true,
		},
	},
}

// blockSchemas documents the structural shape enforced per variant before the
// constraint pass runs. Value constraints (non-empty text, level ranges, item
// minimums) stay in Issues so each failure is reported with a precise path.
// additionalProperties stays true everywhere: unknown fields are ignored.
var blockSchemas = map[string]map[string]any{
	TypeHeading: {
		"type": "object",
		"properties": map[string]any{
			"level": map[string]any{"type": []any{"number", "string"}},
			"text":  localizedTextSchema,
		},
		"additionalProperties": true,
	},
	TypeParagraph: {
		"type": "object",
		"properties": map[string]any{
			"text": localizedTextSchema,
		},
		"additionalProperties": true,
	},
	TypeImage: {
		"type": "object",
		"properties": map[string]any{
			"publicId": map[string]any{"type": "string"},
			"alt":      localizedTextSchema,
			"caption":  localizedTextSchema,
		},
		"additionalProperties": true,
	},
	TypeVideo: {
		"type": "object",
		"properties": map[string]any{
			"publicId": map[string]any{"type": "string"},
			"caption":  localizedTextSchema,
			"posterId": map[string]any{"type": "string"},
		},
		"additionalProperties": true,
	},
	TypeLink: {
		"type": "object",
		"properties": map[string]any{
			"href":  map[string]any{"type": "string"},
			"label": localizedTextSchema,
		},
		"additionalProperties": true,
	},
	TypeList: {
		"type": "object",
		"properties": map[string]any{
			"ordered": map[string]any{"type": "boolean"},
			"items": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"additionalProperties": true,
	},
	TypeQuote: {
		"type": "object",
		"properties": map[string]any{
			"text": localizedTextSchema,
			"cite": map[string]any{"type": "string"},
		},
		"additionalProperties": true,
	},
	TypeDivider: {
		"type":                 "object",
		"additionalProperties": true,
	},
	TypeButton: {
		"type": "object",
		"properties": map[string]any{
			"label": localizedTextSchema,
			"href":  map[string]any{"type": "string"},
			"style": map[string]any{"type": "string"},
		},
		"additionalProperties": true,
	},
	TypeIconFeature: {
		"type": "object",
		"properties": map[string]any{
			"title": localizedTextSchema,
			"text":  localizedTextSchema,
			"icon":  map[string]any{"type": "string"},
		},
		"additionalProperties": true,
	},
	TypeEmbed: {
		"type": "object",
		"properties": map[string]any{
			"provider": map[string]any{"type": "string"},
			"url":      map[string]any{"type": "string"},
			"html":     map[string]any{"type": "string"},
		},
		"additionalProperties": true,
	},
}

var (
	compileOnce     sync.Once
	compiledSchemas map[string]*jsonschema.Schema
)

// schemaFor returns the compiled structural schema for a type tag. Schemas
// compile lazily and only once per process; compilation failures surface as a
// nil schema so the constraint pass still runs.
func schemaFor(tag string) *jsonschema.Schema {
	compileOnce.Do(func() {
		compiledSchemas = make(map[string]*jsonschema.Schema, len(blockSchemas))
		for name, definition := range blockSchemas {
			compiled, err := validation.CompileSchema(definition)
			if err != nil {
				continue
			}
			compiledSchemas[name] = compiled
		}
	})
	return compiledSchemas[tag]
}
