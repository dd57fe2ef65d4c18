package metaobject

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/montanonic/javascript-allonge-six/internal"
)

type (
	// Advice wraps a Method, producing a new Method with the
	// same signature, result, and receiver binding.
	Advice interface {
		Wrap(method Method) Method
	}

	// AdviceFunc adapts an ordinary function to an Advice.
	AdviceFunc func(method Method) Method

	// Predicate decides whether a guarded method should run.
	Predicate func(recv *Receiver, args []any) bool

	// Fallback produces the result of a guarded method whose
	// predicate declined the call.
	Fallback func(recv *Receiver, args []any) (any, error)

	absent struct{}
)

// Absent is the sentinel Maybe treats as a missing argument.
var Absent = absent{}

func (absent) String() string {
	return "ABSENT"
}

func (f AdviceFunc) Wrap(method Method) Method {
	return f(method)
}

// Decorate wraps method with each advice.  The first advice
// listed becomes the outermost layer, so advice observes calls
// in the order given.  Wrapping an already-decorated method
// adds layers transparently; every layer sees the receiver the
// outermost call was bound to.
func Decorate(method Method, advice ...Advice) Method {
	if method == nil {
		panic("method cannot be nil")
	}
	for i := len(advice) - 1; i >= 0; i-- {
		method = advice[i].Wrap(method)
	}
	return method
}

// DecorateEntry is Decorate lifted to method entries.
func DecorateEntry(entry *MethodEntry, advice ...Advice) *MethodEntry {
	if entry == nil {
		panic("entry cannot be nil")
	}
	return &MethodEntry{entry.name, Decorate(entry.method, advice...)}
}

// After produces advice that invokes the method first, then
// runs each effect left-to-right, bound to the same receiver
// and given the original arguments, not the result.  The
// method's result is returned unchanged; effect failures are
// aggregated and reported alongside it.
func After(effects ...Effect) Advice {
	return AdviceFunc(func(method Method) Method {
		return func(recv *Receiver, args ...any) (any, error) {
			result, err := method(recv, args...)
			if err != nil {
				return result, err
			}
			var errs error
			for _, effect := range effects {
				if err := effect(recv, args...); err != nil {
					errs = multierror.Append(errs, err)
				}
			}
			return result, errs
		}
	})
}

// Before produces advice that runs each effect left-to-right
// before the method body.  An effect failure aborts the call.
func Before(effects ...Effect) Advice {
	return AdviceFunc(func(method Method) Method {
		return func(recv *Receiver, args ...any) (any, error) {
			for _, effect := range effects {
				if err := effect(recv, args...); err != nil {
					return nil, err
				}
			}
			return method(recv, args...)
		}
	})
}

// Maybe short-circuits on missing arguments: if any argument is
// nil or the Absent sentinel, that argument is returned without
// invoking the method.
func Maybe(method Method) Method {
	return MaybeAdvice().Wrap(method)
}

// MaybeAdvice is the advice form of Maybe, for use in Decorate
// chains.
func MaybeAdvice() Advice {
	return Guard(
		func(_ *Receiver, args []any) bool {
			_, ok := firstAbsent(args)
			return !ok
		},
		func(_ *Receiver, args []any) (any, error) {
			a, _ := firstAbsent(args)
			return a, nil
		},
	)
}

// Guard produces advice that consults predicate before the
// method body; when the predicate declines, the fallback
// supplies the result and the body never runs.
func Guard(predicate Predicate, fallback Fallback) Advice {
	if predicate == nil {
		panic("predicate cannot be nil")
	}
	if fallback == nil {
		fallback = func(*Receiver, []any) (any, error) {
			return nil, nil
		}
	}
	return AdviceFunc(func(method Method) Method {
		return func(recv *Receiver, args ...any) (any, error) {
			if !predicate(recv, args) {
				return fallback(recv, args)
			}
			return method(recv, args...)
		}
	})
}

// Memoize produces advice that caches results by argument
// value.  The cache belongs to the wrapped entry: receivers
// that see the same wrapped method, whether through a shared
// prototype or a copy-mix of the same entry, share one cache.
// Decorate separately per receiver to isolate caches instead.
func Memoize() Advice {
	return AdviceFunc(func(method Method) Method {
		var (
			lock  sync.Mutex
			cache = make(map[string]any)
		)
		return func(recv *Receiver, args ...any) (any, error) {
			key := memoKey(args)
			lock.Lock()
			if v, ok := cache[key]; ok {
				lock.Unlock()
				return v, nil
			}
			lock.Unlock()
			result, err := method(recv, args...)
			if err != nil {
				return result, err
			}
			lock.Lock()
			cache[key] = result
			lock.Unlock()
			return result, nil
		}
	})
}

// memoKey derives a cache key in which each argument keeps its
// own delimited, typed representation, so argument lists that
// merely format alike cannot collide.
func memoKey(args []any) string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "%d", len(args))
	for _, a := range args {
		_, _ = fmt.Fprintf(&sb, "\x1f%T=%#v", a, a)
	}
	return sb.String()
}

func firstAbsent(args []any) (any, bool) {
	for _, a := range args {
		if internal.IsNil(a) {
			return nil, true
		}
		if a == Absent {
			return Absent, true
		}
	}
	return nil, false
}
