package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"modelbridge/internal/bridge"
	"modelbridge/internal/native"
	"modelbridge/pkg/types"
)

// HTTPError lets an error choose its own HTTP status code. Wire-level errors
// (missingPayloadError) implement it.
type HTTPError interface {
	error
	StatusCode() int
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

// writeBridgeError maps bridge/runtime errors to HTTP status codes:
// conversion failures are the caller's fault (400), a failed runtime call is
// an upstream failure (502, with the runtime status attached), and a missing
// runtime backing is 503.
func writeBridgeError(w http.ResponseWriter, err error) {
	switch {
	case bridge.IsUnknownKind(err), bridge.IsUnknownDType(err),
		bridge.IsShapeMismatch(err), bridge.IsInvalidShape(err),
		bridge.IsUnsupportedScalarType(err), bridge.IsUnsupportedTag(err):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case native.IsRuntimeUnavailable(err):
		writeJSONError(w, http.StatusServiceUnavailable, err.Error())
	case bridge.IsCallFailure(err):
		st, _ := bridge.CallStatus(err)
		code := int32(st)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(types.ErrorResponse{
			Error:         err.Error(),
			Code:          http.StatusBadGateway,
			RuntimeStatus: &code,
		})
	default:
		var he HTTPError
		if errors.As(err, &he) {
			writeJSONError(w, he.StatusCode(), err.Error())
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}
