package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// statusSchema is the contract for the status payload. Exactly one of
// current_question / diagnosis may be non-null; progress is a
// percentage. Null-ness of both at once is legal on the wire (a
// freshly created session that has not planned a question yet) and is
// resolved by the session store.
const statusSchema = `{
  "type": "object",
  "required": ["current_question", "diagnosis", "progress"],
  "properties": {
    "current_question": {
      "oneOf": [
        {"type": "null"},
        {
          "type": "object",
          "required": ["question_id", "question_text", "is_multiple_choice"],
          "properties": {
            "question_id": {"type": "string", "minLength": 1},
            "question_text": {"type": "string", "minLength": 1},
            "options": {"type": "array", "items": {"type": "string"}},
            "is_multiple_choice": {"type": "boolean"}
          }
        }
      ]
    },
    "diagnosis": {
      "oneOf": [
        {"type": "null"},
        {
          "type": "object",
          "required": ["disease", "confidence", "reasoning"],
          "properties": {
            "disease": {"type": "string", "minLength": 1},
            "confidence": {"type": "number", "minimum": 0, "maximum": 100},
            "reasoning": {"type": "string"},
            "explanation": {"type": "string"}
          }
        }
      ]
    },
    "progress": {"type": "number", "minimum": 0, "maximum": 100}
  }
}`

var compileStatusSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal([]byte(statusSchema), &def); err != nil {
		return nil, fmt.Errorf("parse status schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://session-status.json"
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return c.Compile(url)
})

// validateStatus checks a raw status body against the status schema.
// Returns *InvalidResponseError on any violation.
func validateStatus(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &InvalidResponseError{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compileStatusSchema()
	if err != nil {
		return &InvalidResponseError{Content: raw, Err: fmt.Errorf("compile status schema: %w", err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &InvalidResponseError{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}
