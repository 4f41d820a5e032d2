package forms

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/validation"
)

var (
	// ErrSubmitInProgress is returned when Submit is called while a previous
	// submission is still saving.
	ErrSubmitInProgress = errors.New("forms: submit already in progress")
	// ErrUnknownPage is returned by Build for keys without a page.
	ErrUnknownPage = errors.New("forms: unknown page")
)

// ValidationError carries every field issue found on submit.
type ValidationError struct {
	Topic  profile.TopicKey
	Result validation.Result
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("forms: %s has %d invalid field(s): %s", e.Topic, len(e.Result.Issues), e.Result.Error())
}

// SaveError reports a failure inside the save step. The form keeps its
// draft and stays on the same page.
type SaveError struct {
	Topic profile.TopicKey
	Err   error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("forms: saving %s failed: %v", e.Topic, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// IsValidation extracts the validation result from err, if any.
func IsValidation(err error) (validation.Result, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Result, true
	}
	return validation.Result{}, false
}
