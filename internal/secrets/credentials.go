package secrets

import (
	"context"
	"encoding/json"
	"os"

	"github.com/nguyentantai21042004/brief-flow/internal/store"
)

const (
	keyObfuscated = "api_key_enc"
	keyLegacy     = "api_key"

	// Fixed local transform key. Anyone with the binary can recover it;
	// the point is only that the stored value is not the credential verbatim.
	obfuscationKey = "brief-flow-local"
)

// Credentials loads and saves the Gemini API key through the key-value
// store, never in clear text.
type Credentials struct {
	store store.Store
}

func NewCredentials(s store.Store) *Credentials {
	return &Credentials{store: s}
}

// Load returns the configured API key, preferring the environment variable,
// then the obfuscated stored value. A legacy plain-text entry is migrated
// on first read: re-saved obfuscated, then deleted.
func (c *Credentials) Load(ctx context.Context) string {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		return v
	}

	if raw, ok := c.store.Get(ctx, keyObfuscated); ok {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err == nil {
			if key := Decode(encoded, obfuscationKey); key != "" {
				return key
			}
		}
	}

	// Legacy migration path.
	if raw, ok := c.store.Get(ctx, keyLegacy); ok {
		var plain string
		if err := json.Unmarshal(raw, &plain); err == nil && plain != "" {
			c.Save(ctx, plain)
			c.store.Remove(ctx, keyLegacy)
			return plain
		}
	}

	return ""
}

// Save stores the API key in obfuscated form.
func (c *Credentials) Save(ctx context.Context, apiKey string) {
	c.store.Set(ctx, keyObfuscated, Encode(apiKey, obfuscationKey))
}

// Clear removes any stored credential, including a legacy entry.
func (c *Credentials) Clear(ctx context.Context) {
	c.store.Remove(ctx, keyObfuscated)
	c.store.Remove(ctx, keyLegacy)
}
