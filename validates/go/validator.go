package govalidator

import (
	"github.com/asaskevich/govalidator"
	metaobject "github.com/montanonic/javascript-allonge-six"
	"github.com/montanonic/javascript-allonge-six/internal"
	"github.com/montanonic/javascript-allonge-six/validates"
)

// Validator validates struct arguments with govalidator tags.
type Validator struct{}

// Validate checks a single target, reporting failures on the
// returned outcome.
func (v *Validator) Validate(target any) *validates.Outcome {
	outcome := new(validates.Outcome)
	if !internal.IsStruct(target) {
		return outcome
	}
	if ok, err := govalidator.ValidateStruct(target); !ok {
		switch e := err.(type) {
		case govalidator.Errors:
			v.addErrors(outcome, e)
		default:
			outcome.AddError("", err)
		}
	}
	return outcome
}

// Advice produces a guard that validates every struct argument
// before the method body runs.
func (v *Validator) Advice() metaobject.Advice {
	return metaobject.AdviceFunc(func(method metaobject.Method) metaobject.Method {
		return func(recv *metaobject.Receiver, args ...any) (any, error) {
			for _, arg := range args {
				if outcome := v.Validate(arg); !outcome.Valid() {
					return nil, outcome
				}
			}
			return method(recv, args...)
		}
	})
}

func (v *Validator) addErrors(
	outcome *validates.Outcome,
	errs govalidator.Errors,
) {
	for _, err := range errs {
		switch actual := err.(type) {
		case govalidator.Error:
			outcome.AddError(actual.Name, actual)
		case govalidator.Errors:
			v.addErrors(outcome, actual)
		default:
			outcome.AddError("", err)
		}
	}
}
