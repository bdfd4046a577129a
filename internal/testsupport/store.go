package testsupport

import (
	"testing"

	"pgnsplit/internal/catalog"
	"pgnsplit/internal/config"
)

// MustOpenCatalog opens the catalog configured on cfg and registers cleanup.
func MustOpenCatalog(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
