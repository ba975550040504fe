package gemini

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// PartKind identifies which payload a Part carries.
type PartKind int

const (
	PartKindInvalid PartKind = iota
	PartKindText
	PartKindInlineData
	PartKindFileData
	PartKindFunctionCall
	PartKindFunctionResponse
	PartKindExecutableCode
	PartKindCodeExecutionResult
)

// String returns the wire discriminator for the kind.
func (k PartKind) String() string {
	switch k {
	case PartKindText:
		return "text"
	case PartKindInlineData:
		return "inlineData"
	case PartKindFileData:
		return "fileData"
	case PartKindFunctionCall:
		return "functionCall"
	case PartKindFunctionResponse:
		return "functionResponse"
	case PartKindExecutableCode:
		return "executableCode"
	case PartKindCodeExecutionResult:
		return "codeExecutionResult"
	default:
		return "invalid"
	}
}

// Part is the smallest unit of a turn's payload. On the wire a part is an
// object with a single discriminator key, so exactly one field may be set;
// both MarshalJSON and UnmarshalJSON reject anything else. Use the
// constructors (TextPart, FunctionCallPart, ...) rather than building Part
// values by hand.
type Part struct {
	Text                *string           `json:"text,omitempty"`
	InlineData          *Blob             `json:"inlineData,omitempty"`
	FileData            *FileData         `json:"fileData,omitempty"`
	FunctionCall        *FunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse    *FunctionResponse `json:"functionResponse,omitempty"`
	ExecutableCode      *ExecutableCode   `json:"executableCode,omitempty"`
	CodeExecutionResult json.RawMessage   `json:"codeExecutionResult,omitempty"`
}

// Blob is inline media, base64-encoded.
type Blob struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// FileData references previously uploaded media by URI.
type FileData struct {
	MIMEType string `json:"mimeType"`
	FileURI  string `json:"fileUri"`
}

// FunctionCall is the model asking the caller to run a declared function.
type FunctionCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args,omitempty"`
}

// FunctionResponse carries a local function result back to the model.
type FunctionResponse struct {
	Name     string                  `json:"name"`
	Response FunctionResponsePayload `json:"response"`
}

// FunctionResponsePayload wraps the result value in the envelope the API
// expects.
type FunctionResponsePayload struct {
	Content json.RawMessage `json:"content"`
}

// ExecutableCode is code the model emitted for server-side execution.
type ExecutableCode struct {
	Code string `json:"code"`
}

// TextPart returns a part carrying literal text.
func TextPart(text string) Part {
	return Part{Text: &text}
}

// InlineDataPart returns a part carrying inline media. The data is
// base64-encoded as the wire format requires.
func InlineDataPart(mimeType string, data []byte) Part {
	return Part{InlineData: &Blob{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}}
}

// FileDataPart returns a part referencing uploaded media.
func FileDataPart(mimeType, fileURI string) Part {
	return Part{FileData: &FileData{MIMEType: mimeType, FileURI: fileURI}}
}

// FunctionCallPart returns a part carrying a function-call request.
func FunctionCallPart(name string, args json.RawMessage) Part {
	return Part{FunctionCall: &FunctionCall{Name: name, Args: args}}
}

// FunctionResponsePart returns a part carrying a function result.
func FunctionResponsePart(name string, content json.RawMessage) Part {
	return Part{FunctionResponse: &FunctionResponse{
		Name:     name,
		Response: FunctionResponsePayload{Content: content},
	}}
}

// ExecutableCodePart returns a part carrying executable code.
func ExecutableCodePart(code string) Part {
	return Part{ExecutableCode: &ExecutableCode{Code: code}}
}

// Kind reports which payload the part carries, or PartKindInvalid when the
// part is empty or has more than one payload set.
func (p Part) Kind() PartKind {
	kind := PartKindInvalid
	for _, c := range []struct {
		set  bool
		kind PartKind
	}{
		{p.Text != nil, PartKindText},
		{p.InlineData != nil, PartKindInlineData},
		{p.FileData != nil, PartKindFileData},
		{p.FunctionCall != nil, PartKindFunctionCall},
		{p.FunctionResponse != nil, PartKindFunctionResponse},
		{p.ExecutableCode != nil, PartKindExecutableCode},
		{len(p.CodeExecutionResult) > 0, PartKindCodeExecutionResult},
	} {
		if !c.set {
			continue
		}
		if kind != PartKindInvalid {
			return PartKindInvalid
		}
		kind = c.kind
	}
	return kind
}

// partWire avoids recursing into Part's own marshal hooks.
type partWire Part

// MarshalJSON serializes the part, rejecting parts that do not carry exactly
// one payload.
func (p Part) MarshalJSON() ([]byte, error) {
	if p.Kind() == PartKindInvalid {
		return nil, fmt.Errorf("part must carry exactly one payload")
	}
	return json.Marshal(partWire(p))
}

// UnmarshalJSON parses the part, rejecting objects that do not carry exactly
// one discriminator key.
func (p *Part) UnmarshalJSON(data []byte) error {
	var wire partWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	parsed := Part(wire)
	if parsed.Kind() == PartKindInvalid {
		return fmt.Errorf("part must carry exactly one payload, got %s", string(data))
	}
	*p = parsed
	return nil
}
