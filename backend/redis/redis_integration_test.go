package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"
)

// newTestConn connects to the node named by REDIS_ADDR, or skips.
func newTestConn(t *testing.T) *Conn {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping integration test")
	}
	c, err := New(Config{Addr: addr, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close(context.Background()) })
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping %s: %v", addr, err)
	}
	return c
}

func testKey(t *testing.T) string {
	return fmt.Sprintf("kompresscache:test:%s:%d", t.Name(), time.Now().UnixNano())
}

func TestIntegrationHashRoundTrip(t *testing.T) {
	c := newTestConn(t)
	ctx := context.Background()
	key := testKey(t)
	t.Cleanup(func() { _ = c.HDel(ctx, key, "f1", "f2") })

	if err := c.HSet(ctx, key, "f1", []byte(`{"n":1}`)); err != nil {
		t.Fatalf("HSet: %v", err)
	}
	if err := c.HSet(ctx, key, "f2", []byte(`{"n":2}`)); err != nil {
		t.Fatalf("HSet: %v", err)
	}

	b, ok, err := c.HGet(ctx, key, "f1")
	if err != nil || !ok {
		t.Fatalf("HGet = (%q, %v, %v), want hit", b, ok, err)
	}
	if string(b) != `{"n":1}` {
		t.Errorf("HGet f1 = %q", b)
	}

	all, err := c.HGetAll(ctx, key)
	if err != nil {
		t.Fatalf("HGetAll: %v", err)
	}
	if len(all) != 2 || string(all["f2"]) != `{"n":2}` {
		t.Errorf("HGetAll = %v", all)
	}

	if err := c.HDel(ctx, key, "f1"); err != nil {
		t.Fatalf("HDel: %v", err)
	}
	if _, ok, err := c.HGet(ctx, key, "f1"); err != nil || ok {
		t.Errorf("HGet after HDel = (ok=%v, err=%v), want miss", ok, err)
	}
}

func TestIntegrationMissIsNotError(t *testing.T) {
	c := newTestConn(t)
	ctx := context.Background()

	b, ok, err := c.HGet(ctx, testKey(t), "nope")
	if err != nil {
		t.Fatalf("HGet on absent key: %v", err)
	}
	if ok || b != nil {
		t.Errorf("HGet = (%q, %v), want (nil, false)", b, ok)
	}
}

func TestIntegrationTimeoutSurfaces(t *testing.T) {
	c := newTestConn(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	// The child deadline in bound() cannot extend an already-expired parent.
	if err := c.Ping(ctx); err == nil {
		t.Fatal("Ping with expired context succeeded")
	}
}

func TestIntegrationCloseIsIdempotent(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping integration test")
	}
	c, err := New(Config{Addr: addr})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
