package gemini

import "fmt"

// FunctionDeclaration describes a callable capability the model may request.
type FunctionDeclaration struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  FunctionParameters `json:"parameters"`
}

// FunctionParameters is the object-type schema describing a function's
// arguments.
type FunctionParameters struct {
	Type       string                       `json:"type"`
	Properties map[string]ParameterProperty `json:"properties"`
	Required   []string                     `json:"required,omitempty"`
}

// ParameterProperty describes one named parameter.
type ParameterProperty struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	EnumValues  []string `json:"enum_values,omitempty"`
}

// Validate checks that every required parameter name is declared in
// Properties.
func (d FunctionDeclaration) Validate() error {
	for _, name := range d.Parameters.Required {
		if _, ok := d.Parameters.Properties[name]; !ok {
			return fmt.Errorf("function %q: required parameter %q is not declared in properties", d.Name, name)
		}
	}
	return nil
}
