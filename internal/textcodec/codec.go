// Package textcodec converts records to and from the flat line format:
//
//	<kind>,<name>,<age>,<breed>,<adopted:0|1>
//
// Fields are not escaped. A comma inside name or breed shifts the layout,
// so round-trip holds only for commaless fields.
package textcodec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/shelter/pkg/types"
)

const (
	separator  = ","
	fieldCount = 5
)

// ErrDecode is wrapped by every DecodeError.
var ErrDecode = errors.New("decode record")

// Decode failure causes.
var (
	ErrFieldCount = errors.New("too few fields")
	ErrBadAge     = errors.New("age is not a non-negative integer")
	ErrBadAdopted = errors.New("adopted flag is not a boolean")
)

// DecodeError describes a line that could not be turned into a Record.
type DecodeError struct {
	Line  string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %v: %q", ErrDecode, e.Cause, e.Line)
}

// Unwrap exposes both ErrDecode and the cause to errors.Is.
func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Cause}
}

// Encode renders r as one line without the trailing newline.
func Encode(r *types.Record) string {
	adopted := "0"
	if r.Adopted {
		adopted = "1"
	}
	return strings.Join([]string{
		string(r.Kind),
		r.Name,
		strconv.Itoa(r.Age),
		r.Breed,
		adopted,
	}, separator)
}

// Decode parses one line. A trailing carriage return is ignored.
// The fifth field takes the rest of the line.
func Decode(line string) (*types.Record, error) {
	line = strings.TrimSuffix(line, "\r")

	parts := strings.SplitN(line, separator, fieldCount)
	if len(parts) < fieldCount {
		return nil, &DecodeError{Line: line, Cause: ErrFieldCount}
	}

	kind, err := types.ParseKind(parts[0])
	if err != nil {
		return nil, &DecodeError{Line: line, Cause: err}
	}

	age, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil || age < 0 {
		return nil, &DecodeError{Line: line, Cause: ErrBadAge}
	}

	adopted, err := strconv.ParseBool(strings.TrimSpace(parts[4]))
	if err != nil {
		return nil, &DecodeError{Line: line, Cause: ErrBadAdopted}
	}

	return &types.Record{
		Kind:    kind,
		Name:    parts[1],
		Age:     age,
		Breed:   parts[3],
		Adopted: adopted,
	}, nil
}
