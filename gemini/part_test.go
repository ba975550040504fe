package gemini_test

import (
	"encoding/json"
	"testing"

	"github.com/Adriftdev/gemini-client/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart_Kind(t *testing.T) {
	assert.Equal(t, gemini.PartKindText, gemini.TextPart("hello").Kind())
	assert.Equal(t, gemini.PartKindInlineData, gemini.InlineDataPart("image/png", []byte{1, 2}).Kind())
	assert.Equal(t, gemini.PartKindFileData, gemini.FileDataPart("video/mp4", "files/abc").Kind())
	assert.Equal(t, gemini.PartKindFunctionCall, gemini.FunctionCallPart("f", nil).Kind())
	assert.Equal(t, gemini.PartKindFunctionResponse, gemini.FunctionResponsePart("f", json.RawMessage(`{}`)).Kind())
	assert.Equal(t, gemini.PartKindExecutableCode, gemini.ExecutableCodePart("print(1)").Kind())
}

func TestPart_Kind_Empty(t *testing.T) {
	assert.Equal(t, gemini.PartKindInvalid, gemini.Part{}.Kind())
}

func TestPart_Kind_MultiplePayloads(t *testing.T) {
	text := "hi"
	p := gemini.Part{
		Text:         &text,
		FunctionCall: &gemini.FunctionCall{Name: "f"},
	}
	assert.Equal(t, gemini.PartKindInvalid, p.Kind())
}

func TestPart_MarshalJSON_SingleDiscriminator(t *testing.T) {
	data, err := json.Marshal(gemini.TextPart("hello"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hello"}`, string(data))

	data, err = json.Marshal(gemini.FunctionCallPart("get_weather", json.RawMessage(`{"location":"Grantham"}`)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"functionCall":{"name":"get_weather","args":{"location":"Grantham"}}}`, string(data))

	data, err = json.Marshal(gemini.FunctionResponsePart("get_weather", json.RawMessage(`{"temperature":15}`)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"functionResponse":{"name":"get_weather","response":{"content":{"temperature":15}}}}`, string(data))
}

func TestPart_MarshalJSON_RejectsEmpty(t *testing.T) {
	_, err := json.Marshal(gemini.Part{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one payload")
}

func TestPart_MarshalJSON_RejectsMultiplePayloads(t *testing.T) {
	text := "hi"
	p := gemini.Part{
		Text:             &text,
		FunctionResponse: &gemini.FunctionResponse{Name: "f"},
	}
	_, err := json.Marshal(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one payload")
}

func TestPart_UnmarshalJSON_RejectsMultiplePayloads(t *testing.T) {
	var p gemini.Part
	err := json.Unmarshal([]byte(`{"text":"hi","functionCall":{"name":"f"}}`), &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one payload")
}

func TestPart_UnmarshalJSON_RejectsEmpty(t *testing.T) {
	var p gemini.Part
	err := json.Unmarshal([]byte(`{}`), &p)
	require.Error(t, err)
}

func TestPart_RoundTrip(t *testing.T) {
	parts := []gemini.Part{
		gemini.TextPart(""),
		gemini.TextPart("plain text"),
		gemini.InlineDataPart("image/jpeg", []byte("raw-bytes")),
		gemini.FileDataPart("application/pdf", "files/xyz"),
		gemini.FunctionCallPart("lookup", json.RawMessage(`{"id":42}`)),
		gemini.FunctionResponsePart("lookup", json.RawMessage(`{"found":true}`)),
		gemini.ExecutableCodePart("x = 1"),
	}

	for _, part := range parts {
		data, err := json.Marshal(part)
		require.NoError(t, err)

		var parsed gemini.Part
		require.NoError(t, json.Unmarshal(data, &parsed))
		assert.Equal(t, part, parsed)
		assert.Equal(t, part.Kind(), parsed.Kind())
	}
}

func TestInlineDataPart_Base64Encodes(t *testing.T) {
	p := gemini.InlineDataPart("image/png", []byte{0xde, 0xad})
	require.NotNil(t, p.InlineData)
	assert.Equal(t, "3q0=", p.InlineData.Data)
	assert.Equal(t, "image/png", p.InlineData.MIMEType)
}
