package cache

import (
	"errors"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		resource string
		params   []any
		want     string
	}{
		{"bare", "recipients", nil, "recipients"},
		{"one param", "recipient", []any{uint(4)}, "recipient:4"},
		{"filter tuple", "payment-items", []any{true, false, "1,2"}, "payment-items:true:false:1,2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.resource, tt.params...); got != tt.want {
				t.Errorf("Key = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMemory_DeletePrefix(t *testing.T) {
	c := NewMemory(0)
	c.Set("payment-items:false:false:", 1)
	c.Set("payment-items:true:false:3", 2)
	c.Set("payment-item:3", 3)
	c.Set("recipients", 4)

	if n := c.DeletePrefix("payment-items"); n != 2 {
		t.Errorf("expected 2 removed, got %d", n)
	}
	if _, ok := c.Get("payment-item:3"); !ok {
		t.Error("single item key should survive list invalidation")
	}
	if c.Size() != 2 {
		t.Errorf("expected 2 entries left, got %d", c.Size())
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("expected empty cache after Clear, got %d", c.Size())
	}
}

func TestMemory_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemory(time.Minute)
	c.now = func() time.Time { return now }

	c.Set("k", "v")
	if _, ok := c.Get("k"); !ok {
		t.Fatal("fresh entry missing")
	}

	now = now.Add(2 * time.Minute)
	c.Set("fresh", "v")
	if c.Size() != 1 {
		t.Errorf("expected the expired entry to be swept on write, got %d entries", c.Size())
	}
	if _, ok := c.Get("k"); ok {
		t.Error("expired entry returned")
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("unexpired entry dropped")
	}
}

func TestFetch(t *testing.T) {
	c := NewMemory(0)
	calls := 0
	load := func() ([]int, error) {
		calls++
		return []int{1, 2}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Fetch(c, "numbers", load)
		if err != nil || len(got) != 2 {
			t.Fatalf("unexpected result %v %v", got, err)
		}
	}
	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}

	boom := errors.New("boom")
	if _, err := Fetch(c, "failing", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("expected loader error, got %v", err)
	}
	if _, ok := c.Get("failing"); ok {
		t.Error("errors must not be cached")
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(NewMemory(0))
	r.Set("recipients", 1)
	r.Delete("recipients")
	r.DeletePrefix("payment-items")
	r.Clear()

	got := r.Invalidations()
	if len(got) != 2 || got[0] != "recipients" || got[1] != "payment-items*" {
		t.Errorf("unexpected invalidations %v", got)
	}
	if r.Cleared() != 1 {
		t.Errorf("expected one clear, got %d", r.Cleared())
	}
	if r.Size() != 0 {
		t.Error("recorder must forward to the wrapped store")
	}
}
