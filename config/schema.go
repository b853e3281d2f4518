package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

//go:generate go run ../tools/schema-generator -o ../schema/navbar.schema.json

// GenerateSchema generates the JSON Schema for navbar configuration files.
// Nested sections reject unknown keys; the top level stays open so that
// extension sections such as logging validate.
func GenerateSchema() ([]byte, error) {
	return json.MarshalIndent(reflectSchema(), "", "  ")
}

func reflectSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		// Do not allow unknown fields inside known sections.
		AllowAdditionalProperties: false,
		// Only fields tagged jsonschema:"required" are required; everything has a default.
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	schema := r.Reflect(&Config{})
	schema.Title = "Navbar Configuration"
	schema.Description = "Schema for navbar.yml and navbar.toml."
	schema.AdditionalProperties = jsonschema.TrueSchema
	return schema
}
