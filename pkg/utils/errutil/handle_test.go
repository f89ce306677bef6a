package errutil_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/apkshelf/apkshelf/pkg/utils/errutil"
)

func TestHandle(t *testing.T) {
	t.Run("logs error with values", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		ctx := ctxlog.With(context.Background(), logger)

		errutil.Handle(ctx, "refresh failed", goerr.New("boom", goerr.V("target", "btn-reddit")))

		out := buf.String()
		gt.String(t, out).Contains("refresh failed")
		gt.String(t, out).Contains("boom")
		gt.String(t, out).Contains("btn-reddit")
	})

	t.Run("report without sentry client is a no-op", func(t *testing.T) {
		errutil.Report("refresh failed", goerr.New("boom"))
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		ctx := ctxlog.With(context.Background(), logger)

		errutil.Handle(ctx, "nothing", nil)
		gt.Equal(t, buf.String(), "")
	})
}
