// Package harness gives wizardtest access to controller state that the
// public wizard API does not expose. Only packages under pkg/wizard can
// import it.
package harness

import "github.com/goliatone/go-intake/pkg/profile"

// Jump replaces a controller's cursor and aggregate without validation.
// Package wizard installs it at init; c must be a *wizard.Controller.
var Jump func(c any, step int, p profile.Profile) error
