package metaobject

import "fmt"

// InvalidArgumentError reports a composition operation called
// with an unusable receiver or source.
type InvalidArgumentError struct {
	Op     string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument: %s", e.Op, e.Reason)
}

// MethodNotFoundError reports an invocation of a name no
// strategy attached to the receiver.
type MethodNotFoundError struct {
	Name string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("method %q not found", e.Name)
}

// PropertyNotFoundError reports a lookup miss after the
// delegation chain was exhausted.
type PropertyNotFoundError struct {
	Name string
}

func (e *PropertyNotFoundError) Error() string {
	return fmt.Sprintf("property %q not found", e.Name)
}

// CyclicDelegationError reports a delegation chain that loops
// back on itself.
type CyclicDelegationError struct {
	Name string
}

func (e *CyclicDelegationError) Error() string {
	if e.Name == "" {
		return "cyclic delegation"
	}
	return fmt.Sprintf("cyclic delegation while resolving %q", e.Name)
}
