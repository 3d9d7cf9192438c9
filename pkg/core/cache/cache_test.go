package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/msto63/sparrow/foundation/utils/regexx"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestCache(cfg Config) (*Cache[string], *clock) {
	clk := &clock{t: time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)}
	c := New[string](cfg)
	c.now = clk.now
	return c, clk
}

func TestCache_GetSet(t *testing.T) {
	c, _ := newTestCache(DefaultConfig())

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should miss")
	}
	c.Set("a", "1")
	if v, ok := c.Get("a"); !ok || v != "1" {
		t.Errorf("Get(a) = %q, %v, want 1, true", v, ok)
	}

	hits, misses, rate := c.Stats()
	if hits != 1 || misses != 1 || rate != 50 {
		t.Errorf("Stats() = %d, %d, %v, want 1, 1, 50", hits, misses, rate)
	}

	c.Delete("a")
	if c.Size() != 0 {
		t.Errorf("Size() = %d after Delete, want 0", c.Size())
	}
}

func TestCache_Expiration(t *testing.T) {
	c, clk := newTestCache(Config{MaxItems: 10, TTL: time.Minute})

	c.Set("a", "1")
	c.SetWithTTL("b", "2", 0)
	clk.t = clk.t.Add(2 * time.Minute)

	if _, ok := c.Get("a"); ok {
		t.Error("entry a should have expired")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("entry b without TTL should not expire")
	}
	if c.Size() != 1 {
		t.Errorf("Size() = %d, want 1", c.Size())
	}
}

func TestCache_EvictsOldest(t *testing.T) {
	c, clk := newTestCache(Config{MaxItems: 2})

	c.Set("a", "1")
	clk.t = clk.t.Add(time.Second)
	c.Set("b", "2")
	clk.t = clk.t.Add(time.Second)
	c.Set("a", "1b") // overwrite does not evict
	if c.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", c.Size())
	}

	c.Set("c", "3")
	if _, ok := c.Get("b"); ok {
		t.Error("b was added first and should be evicted")
	}
	if v, _ := c.Get("a"); v != "1b" {
		t.Errorf("Get(a) = %q, want 1b", v)
	}
}

func TestCache_EvictsEmptyKey(t *testing.T) {
	c, clk := newTestCache(Config{MaxItems: 2})

	c.Set("", "empty")
	clk.t = clk.t.Add(time.Second)
	c.Set("b", "2")
	clk.t = clk.t.Add(time.Second)
	c.Set("c", "3")

	if _, ok := c.Get(""); ok {
		t.Error("empty key was added first and should be evicted")
	}
	for _, key := range []string{"b", "c"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("Get(%q) missing after eviction", key)
		}
	}
	if c.Size() != 2 {
		t.Errorf("Size() = %d, want 2", c.Size())
	}
}

func TestCache_GetOrSet(t *testing.T) {
	c, _ := newTestCache(DefaultConfig())
	calls := 0
	fn := func() (string, error) {
		calls++
		return "computed", nil
	}

	for i := 0; i < 2; i++ {
		v, err := c.GetOrSet("k", fn)
		if err != nil || v != "computed" {
			t.Fatalf("GetOrSet() = %q, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}

	boom := errors.New("boom")
	if _, err := c.GetOrSet("bad", func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Errorf("GetOrSet() error = %v, want boom", err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed computation should not be stored")
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() = %d after Clear, want 0", c.Size())
	}
}

func TestPatterns_Matcher(t *testing.T) {
	p := NewPatterns(DefaultConfig())
	m := p.Matcher(regexx.RE2{})

	for _, text := range []string{"a1", "b2", "c3"} {
		if !m.MatchExact(text, `[a-z]\d`) {
			t.Errorf("MatchExact(%q) = false", text)
		}
	}

	hits, misses, _ := p.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("Stats() = %d hits, %d misses, want 2, 1", hits, misses)
	}
	if p.Size() != 1 {
		t.Errorf("Size() = %d, want 1", p.Size())
	}
}
