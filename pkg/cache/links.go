package cache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pixelvide/mailto-go/pkg/compose"
)

// LinkCache stores composed results keyed by the draft that produced them.
type LinkCache struct {
	store Store
	ttl   time.Duration
}

// NewLinkCache wraps store with a fixed entry lifetime.
func NewLinkCache(store Store, ttl time.Duration) *LinkCache {
	return &LinkCache{store: store, ttl: ttl}
}

// Key derives the cache key of a draft from its JSON form.
func Key(d compose.Draft) (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return "link:" + hex.EncodeToString(sum[:]), nil
}

// Get returns the cached result for d, or ErrMiss. An entry that no longer
// decodes is evicted and reported as a miss.
func (c *LinkCache) Get(ctx context.Context, d compose.Draft) (compose.Result, error) {
	key, err := Key(d)
	if err != nil {
		return compose.Result{}, err
	}

	raw, err := c.store.Get(ctx, key)
	if err != nil {
		return compose.Result{}, err
	}

	var res compose.Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		if ferr := c.store.Forget(ctx, key); ferr != nil {
			return compose.Result{}, fmt.Errorf("failed to evict corrupt cache entry %s: %w", key, ferr)
		}
		return compose.Result{}, ErrMiss
	}
	return res, nil
}

// Put caches the result composed from d.
func (c *LinkCache) Put(ctx context.Context, d compose.Draft, res compose.Result) error {
	key, err := Key(d)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(res); err != nil {
		return err
	}
	return c.store.Put(ctx, key, strings.TrimSuffix(buf.String(), "\n"), c.ttl)
}
