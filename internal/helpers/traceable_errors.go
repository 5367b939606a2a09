package helpers

import (
	"strings"

	"github.com/ztrue/tracerr"
)

type Error struct {
	errs []tracerr.Error
}

func (e *Error) IsNil() bool {
	return IsNil(e)
}

var NilError = Error{nil}

func IsNil(err error) bool {
	if traceableErr, ok := err.(Error); ok {
		return traceableErr.First() == nil
	}
	if traceableErr, ok := err.(*Error); ok {
		return traceableErr == nil || traceableErr.First() == nil
	}
	return err == nil
}

func (e Error) Error() string {
	messages := MapSlice(e.errs, func(err tracerr.Error) string {
		return err.Error()
	})
	return strings.Join(messages, "; ")
}

// Trace renders every accumulated error with its stack and surrounding source.
func (e Error) Trace() string {
	result := ""
	for _, err := range e.errs {
		result += "-------------------------------------------------------------------------------\n"
		result += tracerr.SprintSourceColor(err, 3) + "\n"
	}
	return result
}

func (e Error) String() string {
	result := ""
	for _, err := range e.errs {
		result += Indent(tracerr.Sprint(err), ".  ") + "\n"
	}
	return result
}

// Unwrap exposes the wrapped errors so sentinels match with errors.Is.
func (e Error) Unwrap() []error {
	return MapSlice(e.errs, func(err tracerr.Error) error {
		return err
	})
}

func (e Error) First() tracerr.Error {
	if e.errs == nil {
		return nil
	} else {
		return e.errs[0]
	}
}

func Wrap(err error) Error {
	if IsNil(err) {
		return NilError
	}
	if traceableErr, ok := err.(Error); ok {
		return traceableErr
	}
	return Error{[]tracerr.Error{tracerr.Wrap(err)}}
}

func WrapReturn[T any](x T, err error) (T, Error) {
	return x, Wrap(err)
}

func Join(others ...Error) Error {
	others = FilterSlice(others, func(err Error) bool {
		return !IsNil(err)
	})
	if len(others) == 0 {
		return NilError
	} else if len(others) == 1 {
		return others[0]
	}

	result := Error{}
	for _, o := range others {
		result.errs = append(result.errs, o.errs...)
	}
	return result
}

func (err Error) NumErrors() int {
	if IsNil(err) {
		return 0
	}

	num := 0
	for _, e := range err.errs {
		if e != nil {
			num++
		}
	}
	return num
}

func Errorf(format string, args ...interface{}) Error {
	return Error{[]tracerr.Error{tracerr.Errorf(format, args...)}}
}
