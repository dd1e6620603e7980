package caching

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if _, ok := cache.Get("corpus-hash"); ok {
		t.Error("Get() hit on empty cache")
	}

	if err := cache.Set("corpus-hash", []byte("dataset payload")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data, ok := cache.Get("corpus-hash")
	if !ok {
		t.Fatal("Get() missed after Set()")
	}
	if string(data) != "dataset payload" {
		t.Errorf("Get() = %q, want the stored payload", data)
	}
}

func TestCacheKeysAreIndependent(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if err := cache.Set("one", []byte("a")); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Get("two"); ok {
		t.Error("Get(\"two\") hit after Set(\"one\")")
	}
}

func TestCacheExpiry(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Nanosecond)
	if err != nil {
		t.Fatal(err)
	}

	if err := cache.Set("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, ok := cache.Get("k"); ok {
		t.Error("Get() hit past the TTL")
	}
}
