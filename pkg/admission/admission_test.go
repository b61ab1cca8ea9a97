package admission

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestMemoryStoreEnforcesLimit(t *testing.T) {
	s := NewMemoryStore()
	defer s.Stop()

	ctx := context.Background()
	for i := 0; i < 60; i++ {
		ok, err := s.TryConsume(ctx, "k", 60, time.Minute)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	ok, err := s.TryConsume(ctx, "k", 60, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("61st request in the window should be denied")
	}
}

func TestMemoryStoreWindowReset(t *testing.T) {
	s := NewMemoryStore()
	defer s.Stop()

	ctx := context.Background()
	window := 20 * time.Millisecond

	for i := 0; i < 3; i++ {
		if ok, _ := s.TryConsume(ctx, "k", 3, window); !ok {
			t.Fatal("within limit")
		}
	}
	if ok, _ := s.TryConsume(ctx, "k", 3, window); ok {
		t.Fatal("over limit")
	}

	time.Sleep(window + 10*time.Millisecond)

	if ok, _ := s.TryConsume(ctx, "k", 3, window); !ok {
		t.Fatal("new window should admit again")
	}
}

func TestMemoryStoreKeysAreIndependent(t *testing.T) {
	s := NewMemoryStore()
	defer s.Stop()

	ctx := context.Background()
	if ok, _ := s.TryConsume(ctx, "a", 1, time.Minute); !ok {
		t.Fatal("first consume on a")
	}
	if ok, _ := s.TryConsume(ctx, "a", 1, time.Minute); ok {
		t.Fatal("a is exhausted")
	}
	if ok, _ := s.TryConsume(ctx, "b", 1, time.Minute); !ok {
		t.Fatal("b has its own counter")
	}
}

func TestMemoryStoreConcurrentConsume(t *testing.T) {
	s := NewMemoryStore()
	defer s.Stop()

	const limit = 60
	const attempts = 200

	var admitted atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.TryConsume(context.Background(), "hot", limit, time.Minute)
			if err != nil {
				t.Error(err)
				return
			}
			if ok {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := admitted.Load(); got != limit {
		t.Fatalf("admitted = %d, want exactly %d", got, limit)
	}
}

type stubStore struct {
	allowed bool
	err     error
	calls   int
}

func (s *stubStore) TryConsume(context.Context, string, int, time.Duration) (bool, error) {
	s.calls++
	return s.allowed, s.err
}

func TestControllerProBypassesStore(t *testing.T) {
	stub := &stubStore{allowed: false}
	c := NewController(stub)

	ok, err := c.Admit(context.Background(), "ep", true)
	if err != nil || !ok {
		t.Fatalf("Admit(pro) = %v, %v", ok, err)
	}
	if stub.calls != 0 {
		t.Error("pro admission must not touch the counter store")
	}
}

func TestControllerDeniesOverLimit(t *testing.T) {
	c := NewController(&stubStore{allowed: false})
	ok, err := c.Admit(context.Background(), "ep", false)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("controller should deny when the store says no")
	}
}

func TestControllerFailsOpenOnStoreError(t *testing.T) {
	storeErr := errors.New("backend down")
	c := NewController(&stubStore{allowed: false, err: storeErr})

	ok, err := c.Admit(context.Background(), "ep", false)
	if !ok {
		t.Fatal("store errors must fail open")
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("error should surface for logging, got %v", err)
	}
}

func TestControllerDefaults(t *testing.T) {
	c := NewController(&stubStore{allowed: true})
	if c.Limit() != FreeTierLimit {
		t.Errorf("Limit() = %d, want %d", c.Limit(), FreeTierLimit)
	}
	if c.Window() != FreeTierWindow {
		t.Errorf("Window() = %v, want %v", c.Window(), FreeTierWindow)
	}
}
