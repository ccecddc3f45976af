package assessment

// Mutation is a deferred change to one section. Build it with Set,
// SetNested or Update and apply it with Snapshot.Apply or a Store.
type Mutation struct {
	section SectionKey
	field   string
	apply   func(*Snapshot)
}

// Section returns the key of the section the mutation touches.
func (m Mutation) Section() SectionKey { return m.section }

// Field returns the field key, or "" for whole-record updates.
func (m Mutation) Field() string { return m.field }

// Dispatch applies mutations to the current answers. Screens only ever get
// this capability, never the Store itself.
type Dispatch func(...Mutation)

// Update replaces a section record with fn applied to a copy of it.
func Update[S Record](sec Section[S], fn func(S) S) Mutation {
	return Mutation{
		section: sec.key,
		apply: func(next *Snapshot) {
			r := fn(*sec.get(next))
			sec.put(next, &r)
		},
	}
}

// Set changes one field of a section.
func Set[S Record, V any](f Field[S, V], v V) Mutation {
	m := Update(f.section, func(r S) S {
		*f.ptr(&r) = v
		return r
	})
	m.field = f.key
	return m
}

// SetNested changes one child of a record-valued field, leaving its
// siblings in place.
func SetNested[S Record, P any, V any](n NestedField[S, P, V], v V) Mutation {
	m := Update(n.parent.section, func(r S) S {
		parent := n.parent.ptr(&r)
		child := *parent
		*n.ptr(&child) = v
		*parent = child
		return r
	})
	m.field = n.parent.key + "." + n.key
	return m
}

// SetField returns a copy of snap with one field changed. snap is untouched
// and every other section is shared with the result.
func SetField[S Record, V any](snap *Snapshot, f Field[S, V], v V) *Snapshot {
	return snap.Apply(Set(f, v))
}

// SetNestedField returns a copy of snap with one nested child changed.
func SetNestedField[S Record, P any, V any](snap *Snapshot, n NestedField[S, P, V], v V) *Snapshot {
	return snap.Apply(SetNested(n, v))
}

// Get reads a field from snap.
func Get[S Record, V any](snap *Snapshot, f Field[S, V]) V {
	r := *f.section.get(snap)
	return *f.ptr(&r)
}

// GetNested reads a nested child from snap.
func GetNested[S Record, P any, V any](snap *Snapshot, n NestedField[S, P, V]) V {
	parent := Get(snap, n.parent)
	return *n.ptr(&parent)
}

// Store owns the current snapshot for one session. It is not safe for
// concurrent use; the UI event loop is its only writer.
type Store struct {
	snap *Snapshot
}

// NewStore returns a store holding the default snapshot.
func NewStore() *Store {
	return &Store{snap: Default()}
}

// NewStoreFrom returns a store holding snap.
func NewStoreFrom(snap *Snapshot) *Store {
	if snap == nil {
		snap = Default()
	}
	return &Store{snap: snap}
}

// Snapshot returns the current answers.
func (s *Store) Snapshot() *Snapshot {
	return s.snap
}

// Dispatch applies mutations as a single step.
func (s *Store) Dispatch(ms ...Mutation) {
	s.snap = s.snap.Apply(ms...)
}

// Reset discards all answers.
func (s *Store) Reset() {
	s.snap = Default()
}
