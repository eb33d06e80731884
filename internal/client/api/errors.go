package api

import "errors"

// genericErrorMessage is the fallback shown when neither the server nor the
// transport supplied anything human-readable.
const genericErrorMessage = "An error occurred"

// errorBody is the error envelope the backend uses for failed requests.
type errorBody struct {
	Error string `json:"error"`
}

// normalizeError builds the single error shape callers of this package ever
// observe. Message priority: server-supplied error field, then the transport
// message, then a generic fallback. Callers never need to inspect status
// codes.
func normalizeError(serverMsg, transportMsg string) error {
	switch {
	case serverMsg != "":
		return errors.New(serverMsg)
	case transportMsg != "":
		return errors.New(transportMsg)
	default:
		return errors.New(genericErrorMessage)
	}
}
