package gemini_test

import (
	"encoding/json"
	"testing"

	"github.com/Adriftdev/gemini-client/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionDeclaration_Validate(t *testing.T) {
	decl := weatherDeclaration()
	require.NoError(t, decl.Validate())
}

func TestFunctionDeclaration_Validate_UndeclaredRequired(t *testing.T) {
	decl := weatherDeclaration()
	decl.Parameters.Required = append(decl.Parameters.Required, "altitude")

	err := decl.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "altitude")
	assert.Contains(t, err.Error(), "get_current_weather")
}

func TestGenerateContentRequest_Validate(t *testing.T) {
	bad := weatherDeclaration()
	bad.Parameters.Required = []string{"nope"}

	req := gemini.GenerateContentRequest{
		Contents: []gemini.Content{{Role: gemini.RoleUser, Parts: []gemini.Part{gemini.TextPart("hi")}}},
		Tools:    []gemini.Tool{gemini.FunctionDeclarationsTool(weatherDeclaration(), bad)},
	}
	require.Error(t, req.Validate())

	req.Tools = []gemini.Tool{gemini.FunctionDeclarationsTool(weatherDeclaration())}
	require.NoError(t, req.Validate())
}

func TestFunctionDeclaration_WireForm(t *testing.T) {
	data, err := json.Marshal(weatherDeclaration())
	require.NoError(t, err)

	expected := `{
		"name": "get_current_weather",
		"description": "Get the current weather in a given location",
		"parameters": {
			"type": "OBJECT",
			"properties": {
				"location": {"type": "string", "description": "The city and state, e.g. 'San Francisco, CA'"},
				"unit": {"type": "string", "description": "Temperature unit", "enum_values": ["celsius", "fahrenheit"]}
			},
			"required": ["location"]
		}
	}`
	assert.JSONEq(t, expected, string(data))
}
