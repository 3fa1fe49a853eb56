package viewstate

// Scope collects release functions for everything a view acquires on mount
// (handlers, timers, timelines, hotspots, model bindings) and runs them in
// reverse acquisition order on Close.
type Scope struct {
	releases []scopeEntry
	nextKey  uint64
	closed   bool
}

type scopeEntry struct {
	key  uint64
	name string
	fn   func()
}

// Defer registers fn to run when the scope closes and returns a key for
// Forget. If the scope is already closed, fn runs immediately and the key
// is zero.
func (s *Scope) Defer(name string, fn func()) uint64 {
	if s.closed {
		fn()
		return 0
	}
	s.nextKey++
	s.releases = append(s.releases, scopeEntry{key: s.nextKey, name: name, fn: fn})
	return s.nextKey
}

// Forget drops the release registered under key without running it. Use it
// when the resource was already released early. It reports whether an entry
// was dropped; once the scope is closing or closed it does nothing.
func (s *Scope) Forget(key uint64) bool {
	if s.closed || key == 0 {
		return false
	}
	for i := len(s.releases) - 1; i >= 0; i-- {
		if s.releases[i].key == key {
			copy(s.releases[i:], s.releases[i+1:])
			s.releases[len(s.releases)-1] = scopeEntry{}
			s.releases = s.releases[:len(s.releases)-1]
			return true
		}
	}
	return false
}

// Len returns the number of releases still held.
func (s *Scope) Len() int {
	return len(s.releases)
}

// Closed reports whether Close has been called.
func (s *Scope) Closed() bool {
	return s.closed
}

// Close runs every registered release, last acquired first, and returns the
// names in the order they ran. Calling Close again is a no-op.
func (s *Scope) Close() []string {
	if s.closed {
		return nil
	}
	s.closed = true
	names := make([]string, 0, len(s.releases))
	for i := len(s.releases) - 1; i >= 0; i-- {
		e := s.releases[i]
		s.releases[i] = scopeEntry{}
		e.fn()
		names = append(names, e.name)
	}
	s.releases = s.releases[:0]
	return names
}

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(Event)
}

type handlerRegistry struct {
	byType [eventTypeCount][]eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered event callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
	scope *Scope
	key   uint64
}

// Remove unregisters this callback so it no longer fires and drops its
// release from the owning scope. Removing twice is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.event, h.id)
	if h.scope != nil {
		h.scope.Forget(h.key)
	}
}

func (r *handlerRegistry) remove(event EventType, id uint32) {
	if event >= eventTypeCount {
		return
	}
	r.byType[event] = removeEventHandler(r.byType[event], id)
}

func removeEventHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType, fn func(Event)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.byType[event] = append(r.byType[event], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

func (r *handlerRegistry) count() int {
	n := 0
	for i := range r.byType {
		n += len(r.byType[i])
	}
	return n
}

// dispatch calls handlers registered for e.Type. A handler removed during
// dispatch still sees the current event.
func (r *handlerRegistry) dispatch(e Event) {
	hs := r.byType[e.Type]
	if len(hs) == 0 {
		return
	}
	snapshot := make([]eventHandler, len(hs))
	copy(snapshot, hs)
	for _, h := range snapshot {
		h.fn(e)
	}
}
