package modkit

import (
	"testing"
	"time"

	"devfeed/internal/core/memo"
	"devfeed/internal/platform/config"
)

func TestDeps_ZeroValue_IsOK(t *testing.T) {
	t.Parallel()
	var d Deps
	if !d.ZeroOK() {
		t.Fatal("zero-value Deps should be safe in tests (ZeroOK == true)")
	}
	if d.CacheOrNew() == nil {
		t.Fatal("CacheOrNew should build a cache when none is shared")
	}
}

func TestDeps_SharedCacheIsReused(t *testing.T) {
	t.Parallel()
	shared := memo.New(memo.WithDefaultTTL(time.Minute))
	d := Deps{Cfg: config.New(), Cache: shared}
	if d.CacheOrNew() != shared {
		t.Fatal("CacheOrNew should return the shared cache")
	}
}
