package gateway

import "context"

// overridesMap loads the override map stored under key. A missing or
// corrupt map is just empty.
func overridesMap[T any](ctx context.Context, c *core, key string) map[string]T {
	m := map[string]T{}
	if _, err := c.store.Get(ctx, key, &m); err != nil {
		c.log.Warn("load overrides", "key", key, "error", err)
	}
	return m
}

// putOverride persists one override record immediately; it is re-merged
// into every subsequent list call until a backend confirms the change.
func putOverride[T any](ctx context.Context, c *core, key, id string, v T) {
	m := overridesMap[T](ctx, c, key)
	m[id] = v
	if err := c.store.Set(ctx, key, m); err != nil {
		c.log.Warn("persist override", "key", key, "error", err)
	}
}
