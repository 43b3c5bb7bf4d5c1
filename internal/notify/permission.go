package notify

import "sync"

// PermissionCache remembers the notification permission answer so the user is
// asked at most once per run. Reset exists for settings flows and tests.
type PermissionCache struct {
	mu     sync.Mutex
	status *bool
}

func NewPermissionCache() *PermissionCache {
	return &PermissionCache{}
}

// Get reports the cached status and whether one has been recorded.
func (c *PermissionCache) Get() (granted, known bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == nil {
		return false, false
	}
	return *c.status, true
}

func (c *PermissionCache) Set(granted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = &granted
}

func (c *PermissionCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = nil
}

// Ensure returns the cached answer, asking exactly once when none is cached.
// A failed ask is cached as denied; it never propagates.
func (c *PermissionCache) Ensure(ask func() (bool, error)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status != nil {
		return *c.status
	}
	granted, err := ask()
	if err != nil {
		granted = false
	}
	c.status = &granted
	return granted
}
