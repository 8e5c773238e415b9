package vocab

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// entrySchema describes the expected shape of a vocabulary file: an array of
// objects carrying non-empty "korean" and "english" strings. Extra fields
// (notes, romanization) are tolerated.
var entrySchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"korean":  map[string]any{"type": "string", "minLength": 1},
			"english": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []any{"korean", "english"},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// getSchema compiles the entry schema once and caches it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(entrySchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://vocabulary.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Load reads and validates a category vocabulary file. The returned pool
// preserves file order. Fails with *InvalidEntryError on malformed entries
// and with the Err* sentinels on insufficient data.
func Load(path string) (Pool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	return Parse(path, raw)
}

// Parse validates raw vocabulary JSON. path is used for error messages only.
func Parse(path string, raw []byte) (Pool, error) {
	// Some editors save JSON with a UTF-8 BOM.
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &InvalidEntryError{Path: path, Err: err}
	}

	schema, err := getSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &InvalidEntryError{Path: path, Err: err}
	}

	var pool Pool
	if err := json.Unmarshal(raw, &pool); err != nil {
		return nil, &InvalidEntryError{Path: path, Err: err}
	}

	if err := pool.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pool, nil
}
