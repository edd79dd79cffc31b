package prefabs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/milk9111/npcwander/wander"
)

const npcSchemaPath = "schemas/npc.schema.json"

var npcSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	src, err := SchemasFS.ReadFile(npcSchemaPath)
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(npcSchemaPath, bytes.NewReader(src)); err != nil {
		return nil, err
	}
	return c.Compile(npcSchemaPath)
})

// validateNPCDocument checks a decoded YAML document against the NPC schema.
// The document is round-tripped through JSON so the validator sees the same
// value types it would for a JSON file.
func validateNPCDocument(doc any) error {
	schema, err := npcSchema()
	if err != nil {
		return fmt.Errorf("compile %s: %w", npcSchemaPath, err)
	}

	if field, ok := nonFiniteField(doc, ""); ok {
		return &wander.ConfigError{Field: field, Reason: "must be finite"}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("schema: encode document: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("schema: decode document: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			leaf := ve
			for len(leaf.Causes) > 0 {
				leaf = leaf.Causes[0]
			}
			field := leaf.InstanceLocation
			if field == "" {
				field = "/"
			}
			return &wander.ConfigError{Field: field, Reason: leaf.Message}
		}
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

// nonFiniteField returns the location of the first NaN or infinite number in
// doc. YAML accepts .nan and .inf but JSON cannot encode them.
func nonFiniteField(doc any, at string) (string, bool) {
	switch v := doc.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if at == "" {
				at = "/"
			}
			return at, true
		}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if field, ok := nonFiniteField(v[k], at+"/"+k); ok {
				return field, true
			}
		}
	case []any:
		for i, item := range v {
			if field, ok := nonFiniteField(item, at+"/"+strconv.Itoa(i)); ok {
				return field, true
			}
		}
	}
	return "", false
}
