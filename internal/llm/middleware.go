package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Middleware decorates a Client with a cross-cutting concern.
type Middleware func(Client) Client

// Wrap applies middlewares in left-to-right order.
// Example: Wrap(inner, A, B) => A(B(inner))
func Wrap(inner Client, mws ...Middleware) Client {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// WithTimeout bounds each request. d <= 0 leaves requests unbounded.
func WithTimeout(d time.Duration) Middleware {
	return func(next Client) Client {
		if d <= 0 {
			return next
		}
		return &timeoutClient{next: next, d: d}
	}
}

type timeoutClient struct {
	next Client
	d    time.Duration
}

func (c *timeoutClient) Name() string { return c.next.Name() }

func (c *timeoutClient) Complete(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.d)
	defer cancel()
	return c.next.Complete(ctx, req)
}

// WithLogging logs request size, latency and errors at debug level.
func WithLogging(logger zerolog.Logger) Middleware {
	return func(next Client) Client {
		return &loggingClient{next: next, log: logger}
	}
}

type loggingClient struct {
	next Client
	log  zerolog.Logger
}

func (l *loggingClient) Name() string { return l.next.Name() }

func (l *loggingClient) Complete(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	l.log.Debug().Str("client", l.next.Name()).Int("bytes", len(req.System)+len(req.Prompt)+len(req.Prefill)).Msg("LLM request")
	resp, err := l.next.Complete(ctx, req)
	if err != nil {
		l.log.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("LLM error")
		return resp, err
	}
	l.log.Debug().Int("bytes", len(resp)).Dur("elapsed", time.Since(start)).Msg("LLM response")
	return resp, nil
}
