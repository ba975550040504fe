// Package gemini is a client for the Google Gemini generateContent API.
//
// A Client holds an API key and issues requests against
// https://generativelanguage.googleapis.com. The request and response types
// mirror the vendor JSON schema one-to-one: conversations are ordered Content
// turns, each turn an ordered list of Parts, and each Part carries exactly one
// payload (text, a function call, a function response, and so on).
//
// Besides plain generation the client supports a single function-calling
// round trip: when the model's reply opens with a function call, the matching
// caller-supplied handler runs locally and its result is sent back to the API
// in one follow-up request. See GenerateContentWithFunctionCalling.
//
// The client never retries on its own; every operation is a single attempt
// and any retry policy belongs to the caller. RetryWithBackoff is provided
// for callers that want one.
package gemini
