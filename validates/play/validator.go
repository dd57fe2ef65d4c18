package playvalidator

import (
	ut "github.com/go-playground/universal-translator"
	play "github.com/go-playground/validator/v10"
	metaobject "github.com/montanonic/javascript-allonge-six"
	"github.com/montanonic/javascript-allonge-six/internal"
	"github.com/montanonic/javascript-allonge-six/validates"
)

type (
	// TypeRules express the validation constraints for a type
	// without depending on validation struct tags.
	TypeRules struct {
		Type        any
		Constraints map[string]string
	}

	// Rules express the validation constraints for a set of types.
	Rules []TypeRules

	// Validator provides core validation behavior.
	Validator struct {
		validate   *play.Validate
		translator ut.Translator
	}
)

// NewValidator builds a tag-based Validator.  translator is
// optional and localizes failure messages when present.
func NewValidator(translator ut.Translator) *Validator {
	return &Validator{play.New(), translator}
}

// WithRules builds a Validator from explicit rules instead of
// struct tags.  configure may customize the underlying engine
// before the rules are registered.
func WithRules(
	rules      Rules,
	configure  func(*play.Validate) error,
	translator ut.Translator,
) (*Validator, error) {
	validate := play.New()
	if configure != nil {
		if err := configure(validate); err != nil {
			return nil, err
		}
	}
	for _, rule := range rules {
		validate.RegisterStructValidationMapRules(rule.Constraints, rule.Type)
	}
	return &Validator{validate, translator}, nil
}

// Validate checks a single target, reporting failures on the
// returned outcome.
func (v *Validator) Validate(target any) *validates.Outcome {
	outcome := new(validates.Outcome)
	if !internal.IsStruct(target) {
		return outcome
	}
	if err := v.validate.Struct(target); err != nil {
		switch e := err.(type) {
		case play.ValidationErrors:
			v.addErrors(outcome, e)
		default:
			outcome.AddError("", err)
		}
	}
	return outcome
}

// Advice produces a guard that validates every struct argument
// before the method body runs.  The first invalid argument's
// outcome becomes the call's failure and the body is skipped.
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
	fieldErrors play.ValidationErrors,
) {
	for _, err := range fieldErrors {
		var message string
		if v.translator != nil {
			message = err.Translate(v.translator)
		} else {
			message = err.Error()
		}
		outcome.AddError(err.Field(), &fieldError{message})
	}
}

type fieldError struct {
	message string
}

func (e *fieldError) Error() string {
	return e.message
}
