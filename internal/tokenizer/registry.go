package tokenizer

import "sync"

// Registry maps language identifiers to tokenizer supports and hands out the
// compact encoded ids used in token styles. Consumers resolve a support once
// (at engine reset) and subscribe for changes instead of re-querying per line.
type Registry struct {
	mu        sync.Mutex
	supports  map[string]Support
	encoded   map[string]uint8
	nextID    uint8
	listeners map[int]func(language string)
	nextSub   int
}

// NewRegistry creates an empty registry. Encoded id 0 stays reserved for
// "no language".
func NewRegistry() *Registry {
	return &Registry{
		supports:  make(map[string]Support),
		encoded:   make(map[string]uint8),
		nextID:    1,
		listeners: make(map[int]func(string)),
	}
}

// Register installs (or replaces) the support for a language and notifies
// subscribers. A nil support unregisters the language; subscribers are
// notified either way because an attached engine must re-resolve.
func (r *Registry) Register(language string, support Support) {
	r.mu.Lock()
	if support == nil {
		delete(r.supports, language)
	} else {
		r.supports[language] = support
	}
	fns := make([]func(string), 0, len(r.listeners))
	for _, fn := range r.listeners {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(language)
	}
}

// Lookup returns the support registered for language, or nil.
func (r *Registry) Lookup(language string) Support {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.supports[language]
}

// EncodedID returns the stable compact id for a language, assigning one on
// first use. The 8-bit space caps out at 255 distinct languages per process;
// past that everything maps to the last id rather than wrapping into
// collisions with earlier languages.
func (r *Registry) EncodedID(language string) uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.encoded[language]; ok {
		return id
	}
	id := r.nextID
	if r.nextID < 255 {
		r.nextID++
	}
	r.encoded[language] = id
	return id
}

// Subscribe registers a callback invoked after every Register call with the
// affected language. The returned function cancels the subscription.
func (r *Registry) Subscribe(fn func(language string)) func() {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.listeners[id] = fn
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		delete(r.listeners, id)
		r.mu.Unlock()
	}
}

// Languages returns the currently registered language identifiers.
func (r *Registry) Languages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.supports))
	for lang := range r.supports {
		out = append(out, lang)
	}
	return out
}
