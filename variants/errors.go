/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package variants

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies a catalog failure.
type ErrorCode string

const (
	// ErrEmptyCatalog indicates the variants file had no records.
	ErrEmptyCatalog ErrorCode = "empty-catalog"
	// ErrMalformed indicates a document or record that is not valid JSON of the expected shape.
	ErrMalformed ErrorCode = "malformed"
	// ErrMissingField indicates a required field is absent.
	ErrMissingField ErrorCode = "missing-field"
	// ErrWrongType indicates a field holds a value of the wrong JSON type.
	ErrWrongType ErrorCode = "wrong-type"
	// ErrUnknownField indicates a field that is not part of the record schema.
	ErrUnknownField ErrorCode = "unknown-field"
	// ErrOutOfRange indicates a field whose value is outside its allowed domain.
	ErrOutOfRange ErrorCode = "out-of-range"
	// ErrFlagNotTrue indicates an opt-in flag that was written with a value other than true.
	ErrFlagNotTrue ErrorCode = "flag-not-true"
	// ErrUnknownSuit indicates a suit name missing from the suit table.
	ErrUnknownSuit ErrorCode = "unknown-suit"
	// ErrUnknownColor indicates a color name missing from the color table.
	ErrUnknownColor ErrorCode = "unknown-color"
	// ErrNoAbbreviation indicates no free letter could be found for a suit.
	ErrNoAbbreviation ErrorCode = "no-abbreviation"
	// ErrDuplicate indicates a value that must be unique appeared more than once.
	ErrDuplicate ErrorCode = "duplicate"
	// ErrNotePattern indicates the identity note pattern could not be built.
	ErrNotePattern ErrorCode = "note-pattern"
)

// Validation is a single catalog failure, located by the variant (or suit,
// or color) it belongs to and, where it applies, the offending field.
//
//nolint:errname // mirrors the catalog vocabulary.
type Validation struct {
	Code    ErrorCode
	Message string
	Record  string
	Field   string
	Value   string
}

// Error formats the validation as "[code] message (record: x, field: y, value: z)".
func (v *Validation) Error() string {
	if v == nil {
		return "validation <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", v.Code, v.Message))

	var context []string
	if v.Record != "" {
		context = append(context, fmt.Sprintf("record: %q", v.Record))
	}
	if v.Field != "" {
		context = append(context, "field: "+v.Field)
	}
	if v.Value != "" {
		context = append(context, fmt.Sprintf("value: %q", v.Value))
	}
	if len(context) > 0 {
		b.WriteString(" (" + strings.Join(context, ", ") + ")")
	}

	return b.String()
}

// ValidationList is an error that wraps one or more validations.
type ValidationList []Validation //nolint:errname // public API name.

// Error returns a compact summary of the list.
func (l ValidationList) Error() string {
	switch len(l) {
	case 0:
		return "no validation errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// Details returns every validation on its own line.
func (l ValidationList) Details() string {
	lines := make([]string, 0, len(l))
	for i := range l {
		lines = append(lines, l[i].Error())
	}
	return strings.Join(lines, "\n")
}

func (l ValidationList) orNil() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func newValidation(code ErrorCode, record, field, format string, args ...any) Validation {
	return Validation{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Record:  record,
		Field:   field,
	}
}

// AsValidations extracts the validations carried by err, if any.
func AsValidations(err error) ([]Validation, bool) {
	if err == nil {
		return nil, false
	}

	var list ValidationList
	if errors.As(err, &list) {
		return []Validation(list), true
	}

	var single *Validation
	if errors.As(err, &single) && single != nil {
		return []Validation{*single}, true
	}

	return nil, false
}

// HasCode reports whether err carries a validation with the given code.
func HasCode(err error, code ErrorCode) bool {
	list, ok := AsValidations(err)
	if !ok {
		return false
	}
	for _, v := range list {
		if v.Code == code {
			return true
		}
	}
	return false
}
