package metaobject

type (
	// CompositionKind selects a composition strategy.
	CompositionKind uint8

	// Strategy is the uniform face of a composition mode.
	// Attach connects a receiver to a behavior source using the
	// strategy's semantics; Resolve finds the method entry the
	// strategy would dispatch for a name.
	Strategy interface {
		Kind() CompositionKind
		Policy() BindingPolicy
		Attach(receiver *Receiver, source *BehaviorSource) (*Receiver, error)
		Resolve(receiver *Receiver, name string) (*MethodEntry, error)
	}

	copyMix           struct{}
	forwardProxy      struct{}
	prototypeDelegate struct{}
)

const (
	CopyMix CompositionKind = iota
	ForwardProxy
	PrototypeDelegate
)

var strategies = [...]Strategy{
	CopyMix:           copyMix{},
	ForwardProxy:      forwardProxy{},
	PrototypeDelegate: prototypeDelegate{},
}

// StrategyFor returns the strategy for a kind.
func StrategyFor(kind CompositionKind) Strategy {
	if int(kind) >= len(strategies) {
		panic("unknown composition kind")
	}
	return strategies[kind]
}

// Attach connects receiver to source using the chosen strategy.
func Attach(kind CompositionKind, receiver *Receiver, source *BehaviorSource) (*Receiver, error) {
	return StrategyFor(kind).Attach(receiver, source)
}


// copyMix

func (copyMix) Kind() CompositionKind {
	return CopyMix
}

func (copyMix) Policy() BindingPolicy {
	return CopyMixPolicy
}

func (copyMix) Attach(receiver *Receiver, source *BehaviorSource) (*Receiver, error) {
	return Mix(receiver, source)
}

func (copyMix) Resolve(receiver *Receiver, name string) (*MethodEntry, error) {
	return resolveOwn(receiver, name)
}


// forwardProxy

func (forwardProxy) Kind() CompositionKind {
	return ForwardProxy
}

func (forwardProxy) Policy() BindingPolicy {
	return ForwardProxyPolicy
}

func (forwardProxy) Attach(receiver *Receiver, source *BehaviorSource) (*Receiver, error) {
	return Delegate(receiver, source)
}

func (forwardProxy) Resolve(receiver *Receiver, name string) (*MethodEntry, error) {
	return resolveOwn(receiver, name)
}


// prototypeDelegate

func (prototypeDelegate) Kind() CompositionKind {
	return PrototypeDelegate
}

func (prototypeDelegate) Policy() BindingPolicy {
	return PrototypeDelegatePolicy
}

func (prototypeDelegate) Attach(receiver *Receiver, source *BehaviorSource) (*Receiver, error) {
	return SetPrototype(receiver, source)
}

func (prototypeDelegate) Resolve(receiver *Receiver, name string) (*MethodEntry, error) {
	if receiver == nil {
		return nil, &InvalidArgumentError{"resolve", "nil receiver"}
	}
	return receiver.Resolve(name)
}

// resolveOwn resolves strictly against the receiver's own
// entries, the visibility both copy-mix and forward-proxy
// attachments produce.
func resolveOwn(receiver *Receiver, name string) (*MethodEntry, error) {
	if receiver == nil {
		return nil, &InvalidArgumentError{"resolve", "nil receiver"}
	}
	if v, ok := receiver.TryGet(name); ok {
		if m, ok := asMethod(v); ok {
			return &MethodEntry{name, m}, nil
		}
	}
	return nil, &MethodNotFoundError{name}
}
