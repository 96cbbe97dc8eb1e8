package httpapi

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"modelbridge/internal/bridge"
	"modelbridge/pkg/types"
	"modelbridge/pkg/values"
)

// Options wires the mux to the bridge entry-point registry and the model
// registry scanned at startup.
type Options struct {
	Registry      *bridge.Registry
	Models        []types.Model
	ModelPath     string
	TokenizerPath string
	// Ready reports whether at least one runtime handle was constructed.
	Ready bool
}

// NewMux builds the HTTP surface over the registered bridge entry points.
func NewMux(opts Options) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	r.Use(MetricsMiddleware)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if !opts.Ready {
			writeJSONError(w, http.StatusServiceUnavailable, "no runtime handle constructed")
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(types.ModelsResponse{Models: opts.Models}); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
		}
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		resp := types.StatusResponse{
			EntryPoints:   opts.Registry.Names(),
			ModelPath:     opts.ModelPath,
			TokenizerPath: opts.TokenizerPath,
			Ready:         opts.Ready,
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
		}
	})

	r.Post("/forward", func(w http.ResponseWriter, r *http.Request) {
		handleExecute(w, r, opts.Registry, bridge.EntryForward)
	})

	r.Post("/execute", func(w http.ResponseWriter, r *http.Request) {
		handleExecute(w, r, opts.Registry, bridge.EntryExecute)
	})

	r.Post("/loadMethod", func(w http.ResponseWriter, r *http.Request) {
		var req types.MethodRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.Method) == "" {
			writeJSONError(w, http.StatusBadRequest, "method is required")
			return
		}
		handleStatusCode(w, r, opts.Registry, bridge.EntryLoadMethod, bridge.Call{Method: req.Method})
	})

	r.Post("/load", func(w http.ResponseWriter, r *http.Request) {
		handleStatusCode(w, r, opts.Registry, bridge.EntryLoad, bridge.Call{})
	})

	r.Post("/generate", func(w http.ResponseWriter, r *http.Request) {
		handleGenerate(w, r, opts.Registry)
	})

	r.Post("/stop", func(w http.ResponseWriter, r *http.Request) {
		if _, err := opts.Registry.Dispatch(r.Context(), bridge.EntryStop, bridge.Call{}); err != nil {
			writeBridgeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(types.StatusCodeResponse{Status: 0})
	})

	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	MountSwagger(r)

	return r
}

// decodeJSONBody enforces content type and body size, decoding into dst.
// Writes the error response itself and returns false on failure.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func handleExecute(w http.ResponseWriter, r *http.Request, reg *bridge.Registry, entry string) {
	var req types.ExecuteRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if entry == bridge.EntryExecute && strings.TrimSpace(req.Method) == "" {
		writeJSONError(w, http.StatusBadRequest, "method is required")
		return
	}
	args, err := toValues(req.Inputs)
	if err != nil {
		writeBridgeError(w, err)
		return
	}
	out, err := reg.Dispatch(r.Context(), entry, bridge.Call{Method: req.Method, Args: args})
	if err != nil {
		writeBridgeError(w, err)
		return
	}
	outputs, err := fromValues(out)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(types.ExecuteResponse{Outputs: outputs}); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

// handleStatusCode serves the entry points whose whole result is a raw
// runtime status code.
func handleStatusCode(w http.ResponseWriter, r *http.Request, reg *bridge.Registry, entry string, call bridge.Call) {
	out, err := reg.Dispatch(r.Context(), entry, call)
	if err != nil {
		writeBridgeError(w, err)
		return
	}
	code := statusCodeFrom(out)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(types.StatusCodeResponse{Status: code}); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

func statusCodeFrom(out []values.Value) int32 {
	if len(out) != 1 {
		return -1
	}
	code, err := out[0].ToInt()
	if err != nil {
		return -1
	}
	return int32(code)
}

// streamListener bridges generation callbacks onto an NDJSON response body.
type streamListener struct {
	w     io.Writer
	flush func()

	tps      float64
	gotStats bool
}

func (l *streamListener) OnResult(text string) {
	b, _ := json.Marshal(types.TokenLine{Token: text})
	if _, err := l.w.Write(append(b, '\n')); err != nil {
		return
	}
	if l.flush != nil {
		l.flush()
	}
}

func (l *streamListener) OnStats(tps float64) {
	l.tps = tps
	l.gotStats = true
}

func handleGenerate(w http.ResponseWriter, r *http.Request, reg *bridge.Registry) {
	var req types.GenerateRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeJSONError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	lvl := requestLogLevel(r)
	start := time.Now()
	if lvl >= LevelInfo {
		if zlog != nil {
			z := zlog.Info().Str("path", r.URL.Path)
			if rid := middleware.GetReqID(r.Context()); rid != "" {
				z = z.Str("request_id", rid)
			}
			z.Msg("generate start")
		} else {
			log.Printf("generate start path=%s", r.URL.Path)
		}
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	var flush func()
	if f, ok := w.(http.Flusher); ok {
		flush = f.Flush
	}
	writer := io.Writer(w)
	if lvl >= LevelDebug {
		writer = io.MultiWriter(w, &loggingLineWriter{})
	}
	listener := &streamListener{w: writer, flush: flush}

	// Join server base context with request context so shutdown and client
	// disconnect both stop the run.
	joinedCtx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()

	out, err := reg.Dispatch(joinedCtx, bridge.EntryGenerate, bridge.Call{
		Prompt:   req.Prompt,
		Listener: listener,
	})
	if err != nil {
		if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
			return
		}
		// Headers may already be out once tokens streamed; only map to a
		// status code when nothing was written yet.
		writeBridgeError(w, err)
		return
	}

	final := types.StatsLine{Done: true, Status: statusCodeFrom(out)}
	if listener.gotStats {
		final.TokensPerSecond = listener.tps
	}
	b, _ := json.Marshal(final)
	if _, err := w.Write(append(b, '\n')); err == nil && flush != nil {
		flush()
	}

	if lvl >= LevelInfo {
		if zlog != nil {
			z := zlog.Info().Dur("dur", time.Since(start)).Float64("tps", final.TokensPerSecond)
			if rid := middleware.GetReqID(r.Context()); rid != "" {
				z = z.Str("request_id", rid)
			}
			z.Msg("generate end")
		} else {
			log.Printf("generate end dur=%s tps=%.2f", time.Since(start), final.TokensPerSecond)
		}
	}
}
