// Package notify bridges store mutations to user-visible feedback: one
// in-app banner at a time, plus a best-effort desktop notification.
package notify

import (
	"sync"

	"go.uber.org/zap"

	"dayplan/internal/logging"
	"dayplan/internal/model"
)

type Relay struct {
	mu       sync.Mutex
	current  *model.Notification
	seq      int
	notifier DesktopNotifier
	perms    *PermissionCache
}

func NewRelay(notifier DesktopNotifier, perms *PermissionCache) *Relay {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	if perms == nil {
		perms = NewPermissionCache()
	}
	return &Relay{notifier: notifier, perms: perms}
}

// Publish replaces the current notification; there is no queue, a newer
// event simply wins. The desktop dispatch never blocks or fails the caller.
func (r *Relay) Publish(message string, typ model.NotificationType) {
	r.mu.Lock()
	r.current = &model.Notification{Message: message, Type: typ}
	r.seq++
	r.mu.Unlock()

	if r.perms.Ensure(r.notifier.RequestPermission) {
		if err := r.notifier.Send(typ.Title(), message, typ); err != nil {
			logging.Warn("desktop notification failed", zap.Error(err))
		}
	}
}

// Current returns the active notification, its sequence number, and whether
// one is showing. The sequence lets a dwell timer tell "still mine" from
// "already superseded".
func (r *Relay) Current() (model.Notification, int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return model.Notification{}, r.seq, false
	}
	return *r.current, r.seq, true
}

// Clear drops the current notification, but only if seq still identifies it;
// a stale dwell timer must not clear a newer notification.
func (r *Relay) Clear(seq int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seq == seq {
		r.current = nil
	}
}

// Permissions exposes the cache for settings flows.
func (r *Relay) Permissions() *PermissionCache {
	return r.perms
}
