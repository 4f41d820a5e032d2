// Package wizardtest holds harness helpers for the wizard. Nothing here is
// reachable from the operator flow.
package wizardtest

import (
	"context"
	"fmt"
	"testing"

	"github.com/goliatone/go-intake/pkg/forms"
	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/profile/profiletest"
	"github.com/goliatone/go-intake/pkg/wizard"
	"github.com/goliatone/go-intake/pkg/wizard/internal/harness"
)

// FastFillStep is where FastFill leaves the cursor.
const FastFillStep = 14

// FastFill replaces the aggregate with sample records for every topic but
// standardResponses and jumps to FastFillStep, skipping page validation.
func FastFill(c *wizard.Controller) error {
	p := profiletest.Profile()
	p.StandardResponses = nil
	return Jump(c, FastFillStep, p)
}

// Jump puts the cursor on step with p as the aggregate, skipping page
// validation.
func Jump(c *wizard.Controller, step int, p profile.Profile) error {
	return harness.Jump(c, step, p)
}

// SubmitCurrent builds the current page seeded with record and submits it
// with no save delay.
func SubmitCurrent(ctx context.Context, c *wizard.Controller, record any) error {
	handle, err := c.Form(forms.WithSaveDelay(0), forms.WithPrior(record))
	if err != nil {
		return err
	}
	return handle.Submit(ctx)
}

// Complete walks every remaining topic with the sample records.
func Complete(t testing.TB, c *wizard.Controller) profile.Profile {
	t.Helper()
	ctx := context.Background()
	for guard := 0; !c.Completed(); guard++ {
		if guard > profile.TopicCount {
			t.Fatalf("wizard did not complete after %d submits", guard)
		}
		step := c.Current()
		if err := SubmitCurrent(ctx, c, profiletest.Topic(step.Key)); err != nil {
			t.Fatalf("submit %s: %v", step.Key, describe(err))
		}
	}
	return c.Profile()
}

func describe(err error) string {
	if result, ok := forms.IsValidation(err); ok {
		return fmt.Sprintf("%v", result.ByField())
	}
	return err.Error()
}
