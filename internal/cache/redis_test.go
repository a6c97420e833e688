package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestParseOptionsBareAddr(t *testing.T) {
	opts, err := ParseOptions("localhost:6379")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6379" {
		t.Fatalf("unexpected addr: %s", opts.Addr)
	}
}

func TestParseOptionsURL(t *testing.T) {
	opts, err := ParseOptions("redis://:secret@example:6380/2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "example:6380" || opts.Password != "secret" || opts.DB != 2 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestParseOptionsBadURL(t *testing.T) {
	if _, err := ParseOptions("redis://bad url"); err == nil {
		t.Fatal("expected error for malformed url")
	}
}

func TestInitRedisAgainstMiniredis(t *testing.T) {
	srv := miniredis.RunT(t)
	t.Setenv("REDIS_URL", srv.Addr())

	InitRedis(context.Background())
	if Client == nil {
		t.Fatal("expected client to be initialized")
	}
	t.Cleanup(func() {
		Client.Close()
		Client = nil
	})

	if err := Client.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := Client.Get(context.Background(), "k").Result()
	if err != nil || got != "v" {
		t.Fatalf("get failed: %v %q", err, got)
	}
	if err := Client.Get(context.Background(), "missing").Err(); err != redis.Nil {
		t.Fatalf("expected redis.Nil for missing key, got %v", err)
	}
}
