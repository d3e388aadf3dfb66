// Package schema validates JSON equity requests against embedded JSON schemas.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/lox/pokereval/equity"
)

//go:embed schemas
var schemaFiles embed.FS

const requestURL = "https://pokereval.dev/schemas/request.json"

// Validator checks request documents before they are decoded.
type Validator struct {
	request *jsonschema.Schema
}

// NewValidator compiles the embedded schemas.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	data, err := schemaFiles.ReadFile("schemas/request.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read request schema: %w", err)
	}
	if err := compiler.AddResource(requestURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add request schema: %w", err)
	}
	request, err := compiler.Compile(requestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile request schema: %w", err)
	}
	return &Validator{request: request}, nil
}

// Validate checks a raw JSON request document.
func (v *Validator) Validate(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := v.request.Validate(doc); err != nil {
		return fmt.Errorf("request does not match schema: %w", err)
	}
	return nil
}

// DecodeRequest validates and decodes a JSON request.
func (v *Validator) DecodeRequest(data []byte) (equity.Request, error) {
	if err := v.Validate(data); err != nil {
		return equity.Request{}, err
	}
	var req equity.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return equity.Request{}, fmt.Errorf("failed to decode request: %w", err)
	}
	return req, nil
}
