package notifications

import (
	"sync"
	"time"
)

// maxPerSession bounds the per-session buffer; older entries are dropped
// first, the same way a toast stack discards what scrolled away.
const maxPerSession = 50

// Recorder stores notifications per wizard session, in memory only.
type Recorder interface {
	Record(sessionID string, severity Severity, message string)
	List(sessionID string) []Notification
	Clear(sessionID string)
}

type recorder struct {
	mu      sync.RWMutex
	entries map[string][]Notification
	now     func() time.Time
}

// NewRecorder creates an in-memory notification recorder
func NewRecorder() Recorder {
	return &recorder{
		entries: make(map[string][]Notification),
		now:     time.Now,
	}
}

func (r *recorder) Record(sessionID string, severity Severity, message string) {
	if !severity.IsValid() {
		severity = SeverityInfo
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list := append(r.entries[sessionID], Notification{
		Severity: severity,
		Message:  message,
		At:       r.now(),
	})
	if len(list) > maxPerSession {
		list = list[len(list)-maxPerSession:]
	}
	r.entries[sessionID] = list
}

func (r *recorder) List(sessionID string) []Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.entries[sessionID]
	out := make([]Notification, len(list))
	copy(out, list)
	return out
}

func (r *recorder) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
}
