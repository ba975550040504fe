package gemini

// Dynamic retrieval modes for search grounding.
const (
	DynamicRetrievalModeUnspecified = "MODE_UNSPECIFIED"
	DynamicRetrievalModeDynamic     = "MODE_DYNAMIC"
)

// Tool configures one capability the model may use. On the wire each tool
// object carries a single key, so set exactly one field.
type Tool struct {
	FunctionDeclarations  []FunctionDeclaration  `json:"functionDeclarations,omitempty"`
	GoogleSearchRetrieval *GoogleSearchRetrieval `json:"googleSearchRetrieval,omitempty"`
	GoogleSearch          *GoogleSearch          `json:"googleSearch,omitempty"`
	CodeExecution         *CodeExecution         `json:"codeExecution,omitempty"`
}

// GoogleSearchRetrieval grounds generation with dynamic search retrieval.
// Used by v1 models; v2 models with built-in search use GoogleSearch instead.
type GoogleSearchRetrieval struct {
	DynamicRetrievalConfig DynamicRetrievalConfig `json:"dynamicRetrievalConfig"`
}

// DynamicRetrievalConfig tunes when search grounding kicks in.
type DynamicRetrievalConfig struct {
	Mode             string  `json:"mode"`
	DynamicThreshold float64 `json:"dynamicThreshold"`
}

// GoogleSearch enables built-in search on models that carry it. The wire form
// is an empty object.
type GoogleSearch struct{}

// CodeExecution enables built-in code execution on models that carry it. The
// wire form is an empty object.
type CodeExecution struct{}

// FunctionDeclarationsTool wraps declarations in a Tool.
func FunctionDeclarationsTool(decls ...FunctionDeclaration) Tool {
	return Tool{FunctionDeclarations: decls}
}

// GoogleSearchRetrievalTool builds a search-grounding tool with the given
// mode and threshold.
func GoogleSearchRetrievalTool(mode string, threshold float64) Tool {
	return Tool{GoogleSearchRetrieval: &GoogleSearchRetrieval{
		DynamicRetrievalConfig: DynamicRetrievalConfig{
			Mode:             mode,
			DynamicThreshold: threshold,
		},
	}}
}
