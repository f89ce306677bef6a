package async

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/apkshelf/apkshelf/pkg/utils/errutil"
)

// Dispatch executes a handler function asynchronously with proper context and panic recovery.
// It is fire-and-forget: the caller never observes the handler's result.
//
// Parameters:
//   - ctx: Original context (values will be preserved, but cancellation won't affect the async handler)
//   - handler: Function to execute asynchronously
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go Isolate(newCtx, "async handler", handler)
}

// Isolate runs handler in the calling goroutine. A returned error or a panic is logged and
// reported, never propagated to the caller. It returns false if the handler failed either way.
func Isolate(ctx context.Context, name string, handler func(ctx context.Context) error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			logger := ctxlog.From(ctx)
			logger.Error("panic in "+name,
				"recover", r,
				"stack", string(stack))
			errutil.Report("recovered panic",
				goerr.New(fmt.Sprintf("panic: %v", r), goerr.V("task", name)))
			ok = false
		}
	}()

	if err := handler(ctx); err != nil {
		errutil.Handle(ctx, "error in "+name, err)
		return false
	}
	return true
}

// newBackgroundContext creates a new background context preserving the ctxlog logger
func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()
	newCtx = ctxlog.With(newCtx, ctxlog.From(ctx))
	return newCtx
}
