package types

// Model represents a discoverable model artifact on disk.
type Model struct {
	// Stable identifier for the model.
	// example: tinyllama-q4.gguf
	ID string `json:"id" example:"tinyllama-q4.gguf"`
	// Human-friendly name.
	// example: tinyllama-q4.gguf
	Name string `json:"name" example:"tinyllama-q4.gguf"`
	// Absolute path to the model file on disk.
	// example: /home/user/models/tinyllama-q4.gguf
	Path string `json:"path" example:"/home/user/models/tinyllama-q4.gguf"`
}

// TaggedValue is the JSON form of a bridge value. Type selects which payload
// field is meaningful; the codes are Tensor=1, String=2, Double=3, Int=4,
// Bool=5.
type TaggedValue struct {
	// Type code of the payload.
	// example: 4
	Type int32 `json:"type" example:"4"`
	// Tensor payload, present when type=1.
	Tensor *TensorPayload `json:"tensor,omitempty"`
	// String payload, present when type=2.
	Str *string `json:"str,omitempty"`
	// Double payload, present when type=3.
	Double *float64 `json:"double,omitempty"`
	// Int payload, present when type=4.
	Int *int64 `json:"int,omitempty"`
	// Bool payload, present when type=5.
	Bool *bool `json:"bool,omitempty"`
}

// TensorPayload is the JSON form of a tensor: dtype code, shape, and the raw
// buffer (base64 in JSON) in native byte order.
type TensorPayload struct {
	// Element type code.
	// example: 4
	DType int32 `json:"dtype" example:"4"`
	// Ordered dimension sizes.
	Shape []int64 `json:"shape"`
	// Raw element bytes, base64-encoded on the wire.
	Data []byte `json:"data"`
}

// ExecuteRequest invokes a named method on the loaded module.
type ExecuteRequest struct {
	// Method name to execute. Defaults to "forward" on the /forward route.
	// example: forward
	Method string `json:"method,omitempty" example:"forward"`
	// Ordered input values.
	Inputs []TaggedValue `json:"inputs"`
}

// ExecuteResponse carries the method's output values in runtime order.
type ExecuteResponse struct {
	Outputs []TaggedValue `json:"outputs"`
}

// MethodRequest names a module method.
type MethodRequest struct {
	// Method name.
	// example: forward
	Method string `json:"method" example:"forward"`
}

// StatusCodeResponse wraps a raw runtime status code. Zero means success;
// the caller is responsible for checking it.
type StatusCodeResponse struct {
	// Numeric runtime status code.
	// example: 0
	Status int32 `json:"status" example:"0"`
}

// GenerateRequest starts a streaming generation run.
type GenerateRequest struct {
	// Prompt text to generate from.
	// example: Write a haiku about the ocean.
	Prompt string `json:"prompt" example:"Write a haiku about the ocean."`
}

// TokenLine is one NDJSON line of a generation stream.
type TokenLine struct {
	// Partial text result.
	// example: wave
	Token string `json:"token" example:"wave"`
}

// StatsLine is the final NDJSON line of a generation stream.
type StatsLine struct {
	// Always true; marks the end of the stream.
	// example: true
	Done bool `json:"done" example:"true"`
	// Raw runtime status code of the run.
	// example: 0
	Status int32 `json:"status" example:"0"`
	// Tokens generated per second over the eval window.
	// example: 20.0
	TokensPerSecond float64 `json:"tokens_per_second" example:"20.0"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Registered entry-point names.
	EntryPoints []string `json:"entry_points"`
	// Model path the bridge was constructed with, if any.
	// example: /home/user/models/tinyllama-q4.gguf
	ModelPath string `json:"model_path,omitempty" example:"/home/user/models/tinyllama-q4.gguf"`
	// Tokenizer path for the generation bridge, if any.
	TokenizerPath string `json:"tokenizer_path,omitempty"`
	// True when at least one runtime handle was constructed.
	// example: true
	Ready bool `json:"ready" example:"true"`
}

// ModelsResponse wraps the list of models returned by GET /models.
type ModelsResponse struct {
	// List of discovered models.
	Models []Model `json:"models"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
	// Runtime status code when the error wraps a failed runtime call.
	// example: 32
	RuntimeStatus *int32 `json:"runtime_status,omitempty" example:"32"`
}
