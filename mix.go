package metaobject

import (
	"sort"

	"github.com/imdario/mergo"
)

// Mix copies every current method of source onto receiver as an
// own entry.  The copies are references to the callables as they
// exist at mix time; later changes to source do not propagate.
// A receiver may mix any number of sources and a source may be
// mixed into any number of receivers, but each mix is a one-time
// snapshot and no link remains afterwards.
func Mix(receiver *Receiver, source *BehaviorSource) (*Receiver, error) {
	if receiver == nil {
		return nil, &InvalidArgumentError{"mix", "nil receiver"}
	}
	if source == nil {
		return nil, &InvalidArgumentError{"mix", "nil source"}
	}
	for _, name := range source.MethodNames() {
		if m, ok := source.Method(name); ok {
			receiver.Set(name, m)
		}
	}
	return receiver, nil
}

// MergeState deep-merges plain values into the receiver's own
// state.  Existing own values win unless override is requested.
func MergeState(receiver *Receiver, values map[string]any, opts ...MergeOption) error {
	if receiver == nil {
		return &InvalidArgumentError{"mergeState", "nil receiver"}
	}
	if len(values) == 0 {
		return nil
	}
	var o mergeOptions
	for _, opt := range opts {
		opt(&o)
	}
	dst := make(map[string]any, len(receiver.props))
	for _, name := range receiver.names {
		if _, callable := asMethod(receiver.props[name]); !callable {
			dst[name] = receiver.props[name]
		}
	}
	merge := []func(*mergo.Config){mergo.WithAppendSlice}
	if o.override {
		merge = append(merge, mergo.WithOverride)
	}
	if err := mergo.Merge(&dst, values, merge...); err != nil {
		return err
	}
	for _, name := range receiver.names {
		if v, ok := dst[name]; ok {
			receiver.props[name] = v
			delete(dst, name)
		}
	}
	// new names in sorted order so OwnNames stays deterministic
	added := make([]string, 0, len(dst))
	for k := range dst {
		added = append(added, k)
	}
	sort.Strings(added)
	for _, k := range added {
		receiver.Set(k, dst[k])
	}
	return nil
}

// MergeOption adjusts MergeState behavior.
type MergeOption func(*mergeOptions)

type mergeOptions struct {
	override bool
}

// MergeStateOverride lets incoming values replace existing ones.
func MergeStateOverride() MergeOption {
	return func(o *mergeOptions) {
		o.override = true
	}
}
