package form

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrymomot/formkit/pkg/control"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/validation"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Errors exports the current errors of the whole tree. Fields are addressed
// by dotted paths such as "address.street" or "phones.0".
func (f *Form) Errors() validator.ValidationErrors {
	var out validator.ValidationErrors
	collect("", f.group, &out)
	return out
}

func collect(path string, c control.AbstractControl, out *validator.ValidationErrors) {
	errs := c.Errors()
	for _, kind := range errs.Kinds() {
		out.Add(exportError(path, kind, errs[kind]))
	}

	switch node := c.(type) {
	case *control.Group:
		for _, name := range node.Names() {
			child, _ := node.Get(name)
			collect(join(path, name), child, out)
		}
	case *control.Array:
		for i := range node.Len() {
			child, _ := node.At(i)
			collect(join(path, strconv.Itoa(i)), child, out)
		}
	}
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func exportError(path, kind string, raw any) validator.ValidationError {
	values := map[string]any{"field": path}
	message := kind

	if d, ok := raw.(validation.Detail); ok {
		values["expected"] = formatExpected(d.Expected)
		switch {
		case d.Text != "":
			message = d.Text
			values["text"] = d.Text
		case d.Message != "":
			message = d.Message
		}
	}

	return validator.ValidationError{
		Field:             path,
		Kind:              kind,
		Message:           message,
		TranslationKey:    validator.TranslationKey(kind),
		TranslationValues: values,
	}
}

func formatExpected(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		return x.Format(time.DateOnly)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// Messages renders the current errors in lang, keyed by field path. A text
// configured on the constraint wins over the translation, and the rule's
// default message is used when lang has no entry for the error kind.
func (f *Form) Messages(tr *i18n.Translator, lang string) map[string][]string {
	errs := f.Errors()
	if len(errs) == 0 {
		return nil
	}

	out := make(map[string][]string, len(errs))
	for _, e := range errs {
		msg := e.Message
		_, custom := e.TranslationValues["text"]
		if !custom && tr != nil && tr.HasTranslation(lang, e.TranslationKey) {
			msg = tr.Tm(lang, e.TranslationKey, e.TranslationValues)
		}
		out[e.Field] = append(out[e.Field], msg)
	}
	return out
}
