package progress

import (
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchemaJSON describes the persisted record shape: collection key →
// index-as-text → presence marker. Stored content that does not match is
// treated as an empty record, never as a crash.
const recordSchemaJSON = `{
	"type": "object",
	"additionalProperties": {
		"type": "object",
		"additionalProperties": {"type": "boolean"}
	}
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// recordSchema returns the compiled schema, compiling it on first use.
func recordSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		var parsed any
		if err := json.Unmarshal([]byte(recordSchemaJSON), &parsed); err != nil {
			schemaErr = fmt.Errorf("parse record schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://progress-record.json"
		if err := c.AddResource(url, parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile(url)
	})
	return schema, schemaErr
}

// decodeRecord parses raw stored bytes into a Record, validating the shape
// first. Any parse or shape failure yields an error; callers degrade to an
// empty record.
func decodeRecord(raw []byte) (Record, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := recordSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("unexpected record shape: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
