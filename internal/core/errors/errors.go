package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode classifies a failure of a comptree run.
type ErrorCode string

const (
	CodeNoInput         ErrorCode = "NO_INPUT"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeValidationError ErrorCode = "VALIDATION_ERROR"
	CodeInternal        ErrorCode = "INTERNAL_ERROR"
)

// Context keys attached to errors raised while scanning.
const (
	CtxPath      = "path"
	CtxOperation = "operation"
	CtxComponent = "component"
)

type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]string
}

func New(code ErrorCode, msg string) error {
	return &DomainError{Code: code, Message: msg}
}

func Newf(code ErrorCode, format string, args ...any) error {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(err error, code ErrorCode, msg string) error {
	return &DomainError{Code: code, Message: msg, Err: err}
}

func (e *DomainError) WithContext(key, value string) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// Error renders "[CODE] message: cause (k=v, ...)" with context keys sorted.
func (e *DomainError) Error() string {
	var b strings.Builder
	b.WriteString("[" + string(e.Code) + "] " + e.Message)
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, k+"="+e.Context[k])
		}
		b.WriteString(" (" + strings.Join(pairs, ", ") + ")")
	}
	return b.String()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// AddContext records key=value on the first DomainError in err's chain and
// returns err itself, so outer wrap messages survive. Errors without a
// DomainError are wrapped as INTERNAL_ERROR.
func AddContext(err error, key, value string) error {
	if err == nil {
		return nil
	}
	var de *DomainError
	if errors.As(err, &de) {
		de.WithContext(key, value)
		return err
	}
	return (&DomainError{Code: CodeInternal, Message: "unexpected failure", Err: err}).WithContext(key, value)
}

func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// CodeOf returns the code of the outermost DomainError in err's chain, or ""
// when there is none.
func CodeOf(err error) ErrorCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
