package log

import (
	"time"

	"github.com/go-logr/logr"
	metaobject "github.com/montanonic/javascript-allonge-six"
	"github.com/montanonic/javascript-allonge-six/internal"
)

type (
	// Provider builds logging advice around method entries.
	// verbosity is used to control the level of logging.
	Provider struct {
		root      logr.Logger
		verbosity int
	}
)

// NewProvider builds a new Provider for logging.
func NewProvider(logger logr.Logger, verbosity int) *Provider {
	return &Provider{logger, verbosity}
}

// Trace produces advice that logs entry and exit of the method
// named name, including duration and any failure.  The method's
// result and receiver binding pass through untouched.
func (p *Provider) Trace(name string) metaobject.Advice {
	logger := p.root.WithName(name).V(p.verbosity)
	return metaobject.AdviceFunc(func(method metaobject.Method) metaobject.Method {
		return func(recv *metaobject.Receiver, args ...any) (any, error) {
			logger.Info("calling", "args", len(args))
			start := time.Now()
			result, err := method(recv, args...)
			elapsed := time.Since(start)
			if err != nil {
				logger.Error(err, "failed", "duration", elapsed)
				return result, err
			}
			if internal.IsNil(result) {
				logger.Info("completed", "duration", elapsed)
			} else {
				logger.Info("completed", "result", result, "duration", elapsed)
			}
			return result, nil
		}
	})
}

// TraceEntry decorates an entry with Trace advice under the
// entry's own name.
func (p *Provider) TraceEntry(entry *metaobject.MethodEntry) *metaobject.MethodEntry {
	return metaobject.DecorateEntry(entry, p.Trace(entry.Name()))
}
