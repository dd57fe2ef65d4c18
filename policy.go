package metaobject

type (
	// Binding identifies when a method body or identity is
	// resolved relative to composition time.
	Binding uint8

	// Extensibility identifies whether methods added to a
	// source after attachment become usable by receivers
	// already attached to it.
	Extensibility uint8

	// BindingPolicy captures the binding semantics of one
	// composition strategy: when bodies resolve, when the set
	// of usable names resolves, and whether the attachment is
	// open to later additions.
	BindingPolicy struct {
		Body      Binding
		Identity  Binding
		Extension Extensibility
	}
)

const (
	EarlyBound Binding = iota
	LateBound
)

const (
	ClosedForExtension Extensibility = iota
	OpenForExtension
)

var (
	// CopyMixPolicy: bodies and identities snapshot at mix time.
	CopyMixPolicy = BindingPolicy{EarlyBound, EarlyBound, ClosedForExtension}

	// ForwardProxyPolicy: bodies resolve per call, but the
	// forwarded name set is fixed at attach time.
	ForwardProxyPolicy = BindingPolicy{LateBound, EarlyBound, ClosedForExtension}

	// PrototypeDelegatePolicy: bodies and identities both
	// resolve per call through the live chain.
	PrototypeDelegatePolicy = BindingPolicy{LateBound, LateBound, OpenForExtension}
)

func (b Binding) String() string {
	switch b {
	case EarlyBound:
		return "early"
	case LateBound:
		return "late"
	}
	return "unknown"
}

func (e Extensibility) String() string {
	switch e {
	case ClosedForExtension:
		return "closed"
	case OpenForExtension:
		return "open"
	}
	return "unknown"
}

// PolicyFor reports the binding policy of a strategy kind.
func PolicyFor(kind CompositionKind) BindingPolicy {
	switch kind {
	case CopyMix:
		return CopyMixPolicy
	case ForwardProxy:
		return ForwardProxyPolicy
	case PrototypeDelegate:
		return PrototypeDelegatePolicy
	}
	panic("unknown composition kind")
}
