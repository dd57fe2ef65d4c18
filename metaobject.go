package metaobject

import (
	"sync"

	"github.com/montanonic/javascript-allonge-six/internal/slices"
)

type (
	// Method is a callable executed on behalf of a receiver.
	// The receiver is passed explicitly so the binding contract
	// is identical no matter how the method was attached.
	Method func(recv *Receiver, args ...any) (any, error)

	// Effect is a side-effecting callable woven around a Method
	// by advice.  It observes the receiver and the original
	// arguments but produces no result of its own.
	Effect func(recv *Receiver, args ...any) error

	// MethodEntry pairs a callable with the name it was resolved
	// under.  Invoking the entry runs the callable bound to the
	// receiver supplied at invocation time.
	MethodEntry struct {
		name   string
		method Method
	}

	// Receiver holds per-object state and any method entries a
	// composition strategy attached to it.  Properties preserve
	// insertion order.  A receiver may additionally hold one
	// prototype back-reference (see CreateDelegating).
	Receiver struct {
		names []string
		props map[string]any
		proto *BehaviorSource
	}

	// BehaviorSource is a shared, mutable table of methods and
	// plain properties.  It may be mutated after receivers have
	// attached to it; strategies differ in whether those
	// mutations are visible.  Mutation and lookup are serialized
	// because forwarding and delegating receivers resolve
	// entries at call time.
	BehaviorSource struct {
		lock   sync.RWMutex
		names  []string
		values map[string]any
		parent *BehaviorSource
	}
)


// MethodEntry

// NewMethodEntry builds an entry for a free-standing method.
func NewMethodEntry(name string, method Method) *MethodEntry {
	if method == nil {
		panic("method cannot be nil")
	}
	return &MethodEntry{name, method}
}

func (e *MethodEntry) Name() string {
	return e.name
}

func (e *MethodEntry) Method() Method {
	return e.method
}

// Invoke runs the entry's callable bound to recv.
func (e *MethodEntry) Invoke(recv *Receiver, args ...any) (any, error) {
	return e.method(recv, args...)
}


// Receiver

func NewReceiver() *Receiver {
	return &Receiver{props: make(map[string]any)}
}

// Set adds or replaces an own property.  A Method value becomes
// an own method entry, shadowing any prototype definition.
func (r *Receiver) Set(name string, value any) *Receiver {
	if _, ok := r.props[name]; !ok {
		r.names = append(r.names, name)
	}
	r.props[name] = value
	return r
}

// TryGet reads an own property only.
func (r *Receiver) TryGet(name string) (any, bool) {
	v, ok := r.props[name]
	return v, ok
}

// Get resolves a property on the receiver, falling through the
// delegation chain when the receiver has a prototype.
func (r *Receiver) Get(name string) (any, error) {
	if v, ok := r.props[name]; ok {
		return v, nil
	}
	if r.proto != nil {
		return r.proto.lookup(name)
	}
	return nil, &PropertyNotFoundError{name}
}

// Delete removes an own property.  Properties visible through
// delegation are unaffected.
func (r *Receiver) Delete(name string) bool {
	if _, ok := r.props[name]; !ok {
		return false
	}
	delete(r.props, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
	return true
}

// OwnNames reports the receiver's own property names in
// insertion order, excluding anything visible only through
// delegation.
func (r *Receiver) OwnNames() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

func (r *Receiver) Prototype() *BehaviorSource {
	return r.proto
}

// Resolve finds the method entry for name, checking own entries
// first and then the delegation chain.  The returned entry is
// bound to this receiver when invoked.
func (r *Receiver) Resolve(name string) (*MethodEntry, error) {
	if v, ok := r.props[name]; ok {
		if m, ok := asMethod(v); ok {
			return &MethodEntry{name, m}, nil
		}
		return nil, &MethodNotFoundError{name}
	}
	if r.proto != nil {
		v, err := r.proto.lookup(name)
		if err != nil {
			if _, cyclic := err.(*CyclicDelegationError); cyclic {
				return nil, err
			}
			return nil, &MethodNotFoundError{name}
		}
		if m, ok := asMethod(v); ok {
			return &MethodEntry{name, m}, nil
		}
		return nil, &MethodNotFoundError{name}
	}
	return nil, &MethodNotFoundError{name}
}

// Call invokes the method for name bound to this receiver.
// State mutations performed by the method land on this
// receiver, never on the object the method was found on.
func (r *Receiver) Call(name string, args ...any) (any, error) {
	entry, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	return entry.Invoke(r, args...)
}


// BehaviorSource

func NewBehaviorSource() *BehaviorSource {
	return &BehaviorSource{values: make(map[string]any)}
}

// AddMethod adds or replaces a method.  Receivers attached with
// a late-bound strategy observe the change on their next call.
func (s *BehaviorSource) AddMethod(name string, method Method) *BehaviorSource {
	if method == nil {
		panic("method cannot be nil")
	}
	return s.Set(name, method)
}

// RemoveMethod removes a method from the table.
func (s *BehaviorSource) RemoveMethod(name string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.values[name]; !ok {
		return false
	}
	delete(s.values, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	return true
}

// Set adds or replaces a plain property or method.
func (s *BehaviorSource) Set(name string, value any) *BehaviorSource {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
	return s
}

// Get reads an own property only.
func (s *BehaviorSource) Get(name string) (any, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

// Method resolves name to a callable own entry.
func (s *BehaviorSource) Method(name string) (Method, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if v, ok := s.values[name]; ok {
		return asMethod(v)
	}
	return nil, false
}

// MethodNames reports the names of all callable own entries in
// insertion order.
func (s *BehaviorSource) MethodNames() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return slices.Filter(s.names, func(name string) bool {
		_, ok := asMethod(s.values[name])
		return ok
	})
}

// OwnNames reports all own entry names in insertion order.
func (s *BehaviorSource) OwnNames() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Parent is the source this source delegates to, if any.
func (s *BehaviorSource) Parent() *BehaviorSource {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.parent
}

// SetParent chains this source to another, extending the
// delegation chain of every receiver whose prototype is s.
// Fails with CyclicDelegationError if the chain would loop.
func (s *BehaviorSource) SetParent(parent *BehaviorSource) error {
	if parent != nil {
		for p := parent; p != nil; p = p.Parent() {
			if p == s {
				return &CyclicDelegationError{}
			}
		}
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.parent = parent
	return nil
}

// lookup resolves name along the source chain, guarding
// against cycles introduced after the chain was built.
func (s *BehaviorSource) lookup(name string) (any, error) {
	visited := make(map[*BehaviorSource]struct{})
	for cur := s; cur != nil; {
		if _, seen := visited[cur]; seen {
			return nil, &CyclicDelegationError{Name: name}
		}
		visited[cur] = struct{}{}
		if v, ok := cur.Get(name); ok {
			return v, nil
		}
		cur = cur.Parent()
	}
	return nil, &PropertyNotFoundError{name}
}

// asMethod recognizes the callable shapes a property may hold.
func asMethod(v any) (Method, bool) {
	switch m := v.(type) {
	case Method:
		return m, true
	case func(*Receiver, ...any) (any, error):
		return m, true
	case *MethodEntry:
		return m.method, true
	}
	return nil, false
}
