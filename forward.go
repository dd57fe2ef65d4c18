package metaobject

import (
	"github.com/montanonic/javascript-allonge-six/internal/slices"
)

// Delegate installs forwarding entries on receiver for each
// name.  When names are omitted, the source's current method
// names are captured once, at attach time; methods added to the
// source afterwards are not forwarded.  Each entry resolves the
// source's callable at invocation time, so replacing a method's
// implementation on the source is observed by every forwarding
// receiver, while the set of forwarded names stays fixed.
func Delegate(receiver *Receiver, source *BehaviorSource, names ...string) (*Receiver, error) {
	if receiver == nil {
		return nil, &InvalidArgumentError{"delegate", "nil receiver"}
	}
	if source == nil {
		return nil, &InvalidArgumentError{"delegate", "nil source"}
	}
	if len(names) == 0 {
		names = source.MethodNames()
	}
	var installed []string
	for _, name := range names {
		if slices.Contains(installed, name) {
			continue
		}
		installed = append(installed, name)
		receiver.Set(name, forwarder(source, name))
	}
	return receiver, nil
}

// forwarder closes over (source, name), deferring the body
// lookup to each call.
func forwarder(source *BehaviorSource, name string) Method {
	return func(recv *Receiver, args ...any) (any, error) {
		method, ok := source.Method(name)
		if !ok {
			return nil, &MethodNotFoundError{name}
		}
		return method(recv, args...)
	}
}
