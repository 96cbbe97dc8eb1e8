package httpapi

import (
	"context"
)

// serverBaseCtx ties streaming handlers to the daemon's lifetime. cmd/bridged
// points it at a context it cancels during shutdown, so an in-flight generate
// stream winds down with the process.
var serverBaseCtx = context.Background()

// SetBaseContext installs the daemon-lifetime context. Passing nil restores
// the default Background context.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		serverBaseCtx = context.Background()
		return
	}
	serverBaseCtx = ctx
}

// joinContexts derives a context that ends when either parent ends. The
// generate handler uses it to couple a token stream to both the request (the
// client hanging up) and the daemon lifetime (shutdown), so either one stops
// the run. Callers must invoke the returned cancel to release the watcher
// goroutine once the handler finishes.
func joinContexts(daemon, request context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer cancel()
		select {
		case <-daemon.Done():
		case <-request.Done():
		}
	}()
	return ctx, cancel
}
