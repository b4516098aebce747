package validator

import (
	"errors"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

var (
	native     *playground.Validate
	nativeOnce sync.Once
)

// Engine returns the shared go-playground validator used by Native, so
// callers can register custom tags.
func Engine() *playground.Validate {
	nativeOnce.Do(func() {
		native = playground.New(playground.WithRequiredStructEnabled())
	})
	return native
}

// Native validates a value against a go-playground tag such as "email" or
// "uuid4|url". Empty values pass unless the tag itself requires a value.
// The failing tag is reported under the "failed" translation value.
func Native(field string, value any, tag string) Rule {
	values := map[string]any{"tag": tag}
	return Rule{
		Check: func() bool {
			if IsEmpty(value) && !strings.Contains(tag, "required") {
				return true
			}

			var v any
			if rv := indirect(value); rv.IsValid() {
				v = rv.Interface()
			}

			err := Engine().Var(v, tag)
			if err == nil {
				return true
			}
			var fieldErrs playground.ValidationErrors
			if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
				values["failed"] = fieldErrs[0].Tag()
			}
			return false
		},
		Error: newError(field, KindNative, "has invalid value", values),
	}
}
