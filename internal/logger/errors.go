package logger

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// A fatal diagnostic. Parsing stops at the first one of these and the error
// is returned up through every enclosing call.
type MsgError struct {
	Msg Msg
}

func NewMsgError(source *Source, r Range, text string) *MsgError {
	return &MsgError{Msg: Msg{
		Kind:     Error,
		Text:     text,
		Location: LocationOrNil(source, r),
	}}
}

func (e *MsgError) Error() string {
	if loc := e.Msg.Location; loc != nil {
		return fmt.Sprintf("%s:%d:%d: %s", loc.File, loc.Line, loc.Column, e.Msg.Text)
	}
	return e.Msg.Text
}

// Collapses every error-kind message into a single error value. Warnings are
// ignored. Returns nil if there were no errors.
func MsgsToError(msgs []Msg) error {
	var result *multierror.Error
	for _, msg := range msgs {
		if msg.Kind == Error {
			result = multierror.Append(result, &MsgError{Msg: msg})
		}
	}
	if result == nil {
		return nil
	}
	result.ErrorFormat = func(errs []error) string {
		if len(errs) == 1 {
			return errs[0].Error()
		}
		text := fmt.Sprintf("%d errors occurred:", len(errs))
		for _, err := range errs {
			text += "\n\t" + err.Error()
		}
		return text
	}
	return result.ErrorOrNil()
}
