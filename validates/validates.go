package validates

import (
	"fmt"
	"sort"
	"strings"
)

// Outcome aggregates validation failures by field path.  An
// empty outcome is valid.  Outcome implements error so a guard
// can surface it directly as the call's failure.
type Outcome struct {
	errors map[string][]error
}

func (o *Outcome) Valid() bool {
	return len(o.errors) == 0
}

// AddError records a failure against a field path.  The empty
// path holds object-level failures.
func (o *Outcome) AddError(path string, err error) {
	if err == nil {
		panic("err cannot be nil")
	}
	if o.errors == nil {
		o.errors = make(map[string][]error)
	}
	o.errors[path] = append(o.errors[path], err)
}

// Fields reports the field paths with failures, sorted.
func (o *Outcome) Fields() []string {
	fields := make([]string, 0, len(o.errors))
	for path := range o.errors {
		fields = append(fields, path)
	}
	sort.Strings(fields)
	return fields
}

// FieldErrors reports the failures recorded against a path.
func (o *Outcome) FieldErrors(path string) []error {
	return o.errors[path]
}

func (o *Outcome) Error() string {
	if o.Valid() {
		return ""
	}
	var sb strings.Builder
	for i, path := range o.Fields() {
		if i > 0 {
			sb.WriteString("; ")
		}
		for j, err := range o.errors[path] {
			if j > 0 {
				sb.WriteString("; ")
			}
			if path == "" {
				sb.WriteString(err.Error())
			} else {
				_, _ = fmt.Fprintf(&sb, "%s: %s", path, err.Error())
			}
		}
	}
	return sb.String()
}
