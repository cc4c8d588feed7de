package complaint

import (
	"errors"
	"fmt"
)

// ErrNotCurrentTarget reports an Advance for a field that is not the machine's
// current collection target. It is an internal invariant breach, never a
// recoverable user-facing condition.
var ErrNotCurrentTarget = errors.New("field is not the current collection target")

// Machine tracks which schema fields are filled and which one comes next.
// Fields are collected strictly in schema order; answers never cause a skip
// or reorder.
type Machine struct {
	schema    Schema
	record    map[string]string
	collected map[string]struct{}
}

func NewMachine(schema Schema) *Machine {
	return &Machine{
		schema:    schema,
		record:    make(map[string]string, len(schema)),
		collected: make(map[string]struct{}, len(schema)),
	}
}

// NextTarget returns the first schema field not yet collected. The second
// return is false once every field is collected.
func (m *Machine) NextTarget() (Field, bool) {
	for _, f := range m.schema {
		if _, done := m.collected[f.Key]; !done {
			return f, true
		}
	}
	return Field{}, false
}

// Advance records value for key and marks the field collected. key must be
// the current target.
func (m *Machine) Advance(key, value string) error {
	target, ok := m.NextTarget()
	if !ok {
		return fmt.Errorf("%w: %q advanced after completion", ErrNotCurrentTarget, key)
	}
	if key != target.Key {
		return fmt.Errorf("%w: got %q, want %q", ErrNotCurrentTarget, key, target.Key)
	}

	m.record[key] = value
	m.collected[key] = struct{}{}
	return nil
}

func (m *Machine) Complete() bool {
	return len(m.collected) == len(m.schema)
}

func (m *Machine) CollectedCount() int {
	return len(m.collected)
}

// Record returns a copy of the values collected so far.
func (m *Machine) Record() map[string]string {
	out := make(map[string]string, len(m.record))
	for k, v := range m.record {
		out[k] = v
	}
	return out
}

// Reset clears all collected values. The schema is untouched.
func (m *Machine) Reset() {
	m.record = make(map[string]string, len(m.schema))
	m.collected = make(map[string]struct{}, len(m.schema))
}
