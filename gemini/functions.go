package gemini

import (
	"context"
	"encoding/json"
	"fmt"
)

// FunctionHandler executes a model-requested function call locally. It
// receives the call's argument object and returns a JSON-marshalable result
// value or an error. Returned errors surface to the caller unchanged,
// wrapped in an ErrKindHandler *Error.
type FunctionHandler func(args json.RawMessage) (any, error)

// GenerateContentWithFunctionCalling performs a generation and, when the
// model's reply opens with a function call, dispatches it through handlers
// and feeds the result back in exactly one follow-up generation.
//
// Only the first part of the first candidate is examined; the API's
// convention is that a function call appears as the primary payload. The
// follow-up response is returned as-is, so a function call nested inside it
// is not dispatched again: the exchange is bounded at two round trips, never
// a loop.
//
// The caller's request value is not mutated; the follow-up request is a copy
// with one appended turn (role tool) whose single part carries the handler
// result.
func (c *Client) GenerateContentWithFunctionCalling(ctx context.Context, model string, req *GenerateContentRequest, handlers map[string]FunctionHandler) (*GenerateContentResponse, error) {
	resp, err := c.GenerateContent(ctx, model, req)
	if err != nil {
		return nil, err
	}

	call := firstFunctionCall(resp)
	if call == nil {
		return resp, nil
	}

	handler, ok := handlers[call.Name]
	if !ok {
		return nil, NewUnknownFunctionError(call.Name)
	}

	result, err := handler(call.Args)
	if err != nil {
		return nil, NewHandlerError(call.Name, err)
	}

	content, err := json.Marshal(result)
	if err != nil {
		return nil, NewHandlerError(call.Name, fmt.Errorf("encode result: %w", err))
	}

	return c.GenerateContent(ctx, model, withFunctionResult(req, call.Name, content))
}

// firstFunctionCall returns the function call carried by the first part of
// the first candidate, or nil when that part is anything else.
func firstFunctionCall(resp *GenerateContentResponse) *FunctionCall {
	if len(resp.Candidates) == 0 {
		return nil
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return nil
	}
	return parts[0].FunctionCall
}

// withFunctionResult copies the request and appends one tool turn carrying
// the function result.
func withFunctionResult(req *GenerateContentRequest, name string, content json.RawMessage) *GenerateContentRequest {
	next := *req
	next.Contents = make([]Content, 0, len(req.Contents)+1)
	next.Contents = append(next.Contents, req.Contents...)
	next.Contents = append(next.Contents, Content{
		Role:  RoleTool,
		Parts: []Part{FunctionResponsePart(name, content)},
	})
	return &next
}
