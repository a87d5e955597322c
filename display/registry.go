package display

import "github.com/spachava753/esncontact/addressbook"

// CollectedBookName is the addressbook of automatically collected contacts.
const CollectedBookName = "collected"

// CollectedMenu is the context-menu token for collected contacts.
const CollectedMenu = "collected-menu-items"

// Matcher selects the addressbooks a registry entry applies to.
type Matcher func(meta addressbook.Metadata) bool

// BookNamed matches addressbooks by name.
func BookNamed(name string) Matcher {
	return func(meta addressbook.Metadata) bool {
		return meta.BookName() == name
	}
}

type registryEntry struct {
	name  string
	match Matcher
	opts  []Option
}

// Registry maps addressbooks to shell flavours.
//
// Entries are evaluated in registration order and the first match wins. Base
// options apply to every shell before the matching entry's options.
type Registry struct {
	base    []Option
	entries []registryEntry
}

// NewRegistry returns a Registry whose shells all receive base options.
func NewRegistry(base ...Option) *Registry {
	return &Registry{base: base}
}

// DefaultRegistry returns a Registry with the collected addressbook flavour
// registered: read-only shells with the collected contacts menu.
func DefaultRegistry(base ...Option) *Registry {
	r := NewRegistry(base...)
	r.Register(CollectedBookName, BookNamed(CollectedBookName), WithMenu(CollectedMenu), WithWritable(false))
	return r
}

// Register appends a named flavour. A nil matcher never matches.
func (r *Registry) Register(name string, match Matcher, opts ...Option) {
	r.entries = append(r.entries, registryEntry{name: name, match: match, opts: opts})
}

// Flavour returns the name of the entry matching meta, or "" for the default.
func (r *Registry) Flavour(meta addressbook.Metadata) string {
	if entry, ok := r.lookup(meta); ok {
		return entry.name
	}
	return ""
}

// Build wraps record in a Shell configured for the addressbook meta.
func (r *Registry) Build(meta addressbook.Metadata, record Record) *Shell {
	opts := make([]Option, 0, len(r.base)+2)
	opts = append(opts, r.base...)
	if entry, ok := r.lookup(meta); ok {
		opts = append(opts, entry.opts...)
	}
	return New(record, opts...)
}

func (r *Registry) lookup(meta addressbook.Metadata) (registryEntry, bool) {
	if meta.Empty() {
		return registryEntry{}, false
	}
	for _, entry := range r.entries {
		if entry.match != nil && entry.match(meta) {
			return entry, true
		}
	}
	return registryEntry{}, false
}
