package metaobject

// CreateDelegating returns a new empty receiver whose prototype
// is source.  Nothing is copied: every lookup that misses the
// receiver's own properties falls through to the source, and
// through the source's parent chain after that.  Methods found
// anywhere on the chain bind to the original receiver when
// invoked, so state mutations land on the receiver, never on
// the shared source.
func CreateDelegating(source *BehaviorSource) *Receiver {
	receiver := NewReceiver()
	receiver.proto = source
	return receiver
}

// SetPrototype reassigns the receiver's direct prototype.  A
// receiver has exactly one direct prototype at a time; passing
// nil detaches it.
func SetPrototype(receiver *Receiver, source *BehaviorSource) (*Receiver, error) {
	if receiver == nil {
		return nil, &InvalidArgumentError{"setPrototype", "nil receiver"}
	}
	if source != nil {
		visited := make(map[*BehaviorSource]struct{})
		for p := source; p != nil; p = p.Parent() {
			if _, seen := visited[p]; seen {
				return nil, &CyclicDelegationError{}
			}
			visited[p] = struct{}{}
		}
	}
	receiver.proto = source
	return receiver, nil
}

// OwnNames reports the receiver's own property names only,
// excluding everything visible through delegation.
func OwnNames(receiver *Receiver) []string {
	if receiver == nil {
		return nil
	}
	return receiver.OwnNames()
}
