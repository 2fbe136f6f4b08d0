package llm

import (
	"context"
	"sync"
)

// FakeClient returns canned replies in order. Tests in other packages use it
// in place of a real provider.
// Once the script is exhausted it keeps returning Fallback.
type FakeClient struct {
	mu       sync.Mutex
	replies  []string
	Fallback string
	Requests []Request
}

func NewFakeClient(replies ...string) *FakeClient {
	return &FakeClient{replies: replies}
}

func (f *FakeClient) Name() string { return "fake" }

func (f *FakeClient) Complete(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Requests = append(f.Requests, req)
	if len(f.replies) == 0 {
		return f.Fallback, nil
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}
