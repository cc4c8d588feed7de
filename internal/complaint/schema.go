package complaint

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Field is one piece of information the conversation must collect.
type Field struct {
	Key      string `yaml:"key"`
	Question string `yaml:"question"`
}

// Schema is the ordered list of fields a complaint requires. The slice order
// is the collection order; it is fixed for the lifetime of a session and is
// never a map, so iteration order is a structural guarantee.
type Schema []Field

// DefaultSchema returns the built-in robbery complaint field list.
func DefaultSchema() Schema {
	return Schema{
		{Key: "name", Question: "What is your full name?"},
		{Key: "mobile", Question: "What is your mobile number?"},
		{Key: "email", Question: "What is your email address?"},
		{Key: "age", Question: "What is your age?"},
		{Key: "gender", Question: "What is your gender?"},
		{Key: "father_name", Question: "What is your father's name?"},
		{Key: "present_address", Question: "What is your present address?"},
		{Key: "district", Question: "Which district do you live in?"},
		{Key: "nearest_police_station_home", Question: "What is the nearest police station to your house?"},
		{Key: "incident_location", Question: "Where did the robbery/theft happen?"},
		{Key: "stolen_items", Question: "What was stolen from you?"},
		{Key: "robber_description", Question: "Can you describe how the robbers looked like?"},
		{Key: "nearest_police_station_incident", Question: "What is the nearest police station to where the incident occurred?"},
		{Key: "incident_description", Question: "Please provide a brief description of the entire incident"},
	}
}

// LoadSchema reads an ordered field list from a YAML file. The file must
// declare at least one field, and every field needs a unique non-empty key
// and a question.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	var doc struct {
		Fields Schema `yaml:"fields"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema file: %w", err)
	}

	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("schema file %s declares no fields", path)
	}

	seen := make(map[string]struct{}, len(doc.Fields))
	for i, f := range doc.Fields {
		if f.Key == "" {
			return nil, fmt.Errorf("schema field %d has an empty key", i)
		}
		if f.Question == "" {
			return nil, fmt.Errorf("schema field %q has no question", f.Key)
		}
		if _, dup := seen[f.Key]; dup {
			return nil, fmt.Errorf("schema field %q declared twice", f.Key)
		}
		seen[f.Key] = struct{}{}
	}

	return doc.Fields, nil
}

// Keys returns the field keys in collection order.
func (s Schema) Keys() []string {
	keys := make([]string, len(s))
	for i, f := range s {
		keys[i] = f.Key
	}
	return keys
}
