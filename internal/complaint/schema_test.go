package complaint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchemaOrderAndUniqueness(t *testing.T) {
	schema := DefaultSchema()
	require.Len(t, schema, 14)

	assert.Equal(t, "name", schema[0].Key)
	assert.Equal(t, "incident_description", schema[len(schema)-1].Key)

	seen := make(map[string]struct{})
	for _, f := range schema {
		assert.NotEmpty(t, f.Question, "field %s has no question", f.Key)
		_, dup := seen[f.Key]
		assert.False(t, dup, "duplicate key %s", f.Key)
		seen[f.Key] = struct{}{}
	}
}

func TestLoadSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
fields:
  - key: name
    question: What is your full name?
  - key: vehicle
    question: What vehicle was involved?
`), 0o644))

	schema, err := LoadSchema(path)
	require.NoError(t, err)
	require.Len(t, schema, 2)
	assert.Equal(t, Field{Key: "name", Question: "What is your full name?"}, schema[0])
	assert.Equal(t, "vehicle", schema[1].Key)
}

func TestLoadSchemaRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no fields", "fields: []"},
		{"empty key", "fields:\n  - key: \"\"\n    question: q"},
		{"missing question", "fields:\n  - key: name"},
		{"duplicate key", "fields:\n  - key: name\n    question: a\n  - key: name\n    question: b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "schema.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := LoadSchema(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadSchemaMissingFile(t *testing.T) {
	_, err := LoadSchema(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
