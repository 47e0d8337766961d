package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid    = errors.New("schema invalid")
	ErrSchemaValidation = errors.New("schema validation failed")
)

// CompileSchema compiles a JSON schema definition supplied as a plain map.
// Block schemas are compiled once at registry construction, so the marshal
// round trip here is not on a hot path.
func CompileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return compiled, nil
}

// ValidatePayload runs payload through a compiled schema and converts any
// failure into field-addressed issues.
func ValidatePayload(schema *jsonschema.Schema, payload map[string]any) []Issue {
	if schema == nil {
		return nil
	}
	if payload == nil {
		payload = map[string]any{}
	}
	err := schema.Validate(toJSONValue(payload))
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		return collectSchemaIssues(verr)
	}
	return []Issue{{Code: CodeFieldConstraint, Message: err.Error()}}
}

func collectSchemaIssues(err *jsonschema.ValidationError) []Issue {
	if err == nil {
		return nil
	}
	issues := []Issue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Path:    locationToPath(node.InstanceLocation),
				Code:    CodeFieldConstraint,
				Message: strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}

// locationToPath converts a JSON pointer ("/items/0/text") into the dotted
// path form the collectors use ("items[0].text").
func locationToPath(location string) string {
	location = strings.TrimSpace(location)
	if location == "" || location == "/" {
		return ""
	}
	segments := strings.Split(strings.TrimPrefix(location, "/"), "/")
	var b strings.Builder
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if isDigits(seg) {
			b.WriteString("[" + seg + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(seg)
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// toJSONValue normalizes Go values into the shapes the jsonschema package
// expects (json.Unmarshal output). Typed numbers inside maps are handled by
// a marshal round trip only when needed.
func toJSONValue(payload map[string]any) any {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return payload
	}
	var out any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return payload
	}
	return out
}
