package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "validate-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "object"},
				},
			},
			"required": []any{"questions"},
		},
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	if err := validateResponse(testSchema(), json.RawMessage(`{"questions":[{}]}`)); err != nil {
		t.Errorf("conforming payload rejected: %v", err)
	}
}

func TestValidateResponseRejectsShape(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{"questions":"nope"}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want *ErrInvalidResponse", err)
	}
	if string(inv.Content) != `{"questions":"nope"}` {
		t.Error("error does not carry the raw content for repair")
	}
}

func TestValidateResponseRejectsMalformedJSON(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage("```json\n{}\n```"))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want *ErrInvalidResponse", err)
	}
}
