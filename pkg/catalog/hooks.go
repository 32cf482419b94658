package catalog

import "sync"

// Hook function types for catalog events
type (
	// EntryAddedHook is called when an entry is added to the catalog
	EntryAddedHook func(entry Entry)

	// LoadedHook is called when the catalog finishes loading its document
	LoadedHook func(entries []Entry)
)

// hooks manages event callbacks for catalog changes. Callbacks run
// synchronously on the caller's goroutine so views observe the mutation
// before the triggering operation returns.
type hooks struct {
	mu          sync.RWMutex
	onAdded     []EntryAddedHook
	onLoadedFns []LoadedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// onEntryAdded registers a callback for when entries are added
func (h *hooks) onEntryAdded(fn EntryAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onAdded = append(h.onAdded, fn)
}

// onLoaded registers a callback for when the catalog loads
func (h *hooks) onLoaded(fn LoadedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onLoadedFns = append(h.onLoadedFns, fn)
}

// notifyAdded triggers the entry-added callbacks
func (h *hooks) notifyAdded(entry Entry) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onAdded {
		hook(entry)
	}
}

// notifyLoaded triggers the loaded callbacks
func (h *hooks) notifyLoaded(entries []Entry) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onLoadedFns {
		hook(entries)
	}
}
