package httpapi

import "context"

// serverBaseCtx is canceled on process shutdown so in-flight handler work
// stops together with the server. Background until the serve entrypoint
// installs the real one.
var serverBaseCtx = context.Background()

// SetBaseContext installs the shutdown context that handlers join with
// their request context. Passing nil resets to Background.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	serverBaseCtx = ctx
}

// joinContexts derives a context canceled as soon as either parent is done,
// so a translate call is abandoned both on client disconnect and on server
// shutdown. The cancel func releases the watcher goroutine and must always
// be called when the handler returns.
func joinContexts(a, b context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-a.Done():
		case <-b.Done():
		}
		cancel()
	}()
	return ctx, cancel
}
