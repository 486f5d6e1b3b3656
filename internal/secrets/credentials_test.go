package secrets

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nguyentantai21042004/brief-flow/internal/store"
)

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	creds := NewCredentials(s)

	t.Setenv("GEMINI_API_KEY", "")

	creds.Save(ctx, "my-api-key")
	if got := creds.Load(ctx); got != "my-api-key" {
		t.Errorf("Load() = %q, want my-api-key", got)
	}

	// The stored form must not contain the key verbatim.
	raw, ok := s.Get(ctx, "api_key_enc")
	if !ok {
		t.Fatal("obfuscated key not stored")
	}
	var stored string
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatal(err)
	}
	if stored == "my-api-key" {
		t.Error("credential stored in clear text")
	}
}

func TestEnvOverridesStore(t *testing.T) {
	ctx := context.Background()
	creds := NewCredentials(store.NewMemory())
	creds.Save(ctx, "stored-key")

	t.Setenv("GEMINI_API_KEY", "env-key")
	if got := creds.Load(ctx); got != "env-key" {
		t.Errorf("Load() = %q, want env-key", got)
	}
}

func TestLegacyMigration(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	s.Set(ctx, "api_key", "legacy-plain-key")

	t.Setenv("GEMINI_API_KEY", "")

	creds := NewCredentials(s)
	if got := creds.Load(ctx); got != "legacy-plain-key" {
		t.Fatalf("Load() = %q, want legacy-plain-key", got)
	}

	// Legacy entry is gone, obfuscated entry exists.
	if _, ok := s.Get(ctx, "api_key"); ok {
		t.Error("legacy key still present after migration")
	}
	if _, ok := s.Get(ctx, "api_key_enc"); !ok {
		t.Error("obfuscated key missing after migration")
	}

	// Subsequent loads keep working from the migrated entry.
	if got := creds.Load(ctx); got != "legacy-plain-key" {
		t.Errorf("Load() after migration = %q, want legacy-plain-key", got)
	}
}

func TestLoadMissing(t *testing.T) {
	ctx := context.Background()
	t.Setenv("GEMINI_API_KEY", "")

	creds := NewCredentials(store.NewMemory())
	if got := creds.Load(ctx); got != "" {
		t.Errorf("Load() = %q, want empty", got)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	t.Setenv("GEMINI_API_KEY", "")

	creds := NewCredentials(store.NewMemory())
	creds.Save(ctx, "k")
	creds.Clear(ctx)
	if got := creds.Load(ctx); got != "" {
		t.Errorf("Load() after Clear() = %q, want empty", got)
	}
}
