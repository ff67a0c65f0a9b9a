package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"travelhub/internal/cache"
)

// Denylist keeps logged-out tokens in redis until they would have
// expired anyway. Without redis every entry is a silent no-op and
// tokens simply age out, which keeps logout idempotent either way.
type Denylist struct {
	cache *cache.Cache
}

func NewDenylist(c *cache.Cache) *Denylist {
	return &Denylist{cache: c}
}

func (d *Denylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.cache.Set(ctx, denylistKey(token), "1", ttl)
}

func (d *Denylist) IsRevoked(ctx context.Context, token string) bool {
	return d.cache.Exists(ctx, denylistKey(token))
}

// Tokens are stored hashed; the denylist must not be a token archive.
func denylistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "auth:denylist:" + hex.EncodeToString(sum[:])
}
