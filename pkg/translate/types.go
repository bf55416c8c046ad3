// Package translate holds the translation domain: wire types for the
// /translate/ endpoint, the classified upstream failure taxonomy, and the
// Translator service that drives the provider.
package translate

// Request is the body of a translate call.
// InputStr is a pointer so the boundary can tell a missing field from an
// empty one.
type Request struct {
	InputStr *string `json:"input_str"`
}

// Response is the body of a successful translate call.
type Response struct {
	TranslatedText string `json:"translated_text"`
}

// ErrorResponse is the failure envelope for every endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
