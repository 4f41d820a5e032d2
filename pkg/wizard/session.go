package wizard

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-intake/pkg/profile"
)

// Snapshot is the resumable state of a session.
type Snapshot struct {
	SessionID string          `json:"sessionId" yaml:"sessionId"`
	Step      int             `json:"step" yaml:"step"`
	Completed bool            `json:"completed,omitempty" yaml:"completed,omitempty"`
	SavedAt   time.Time       `json:"savedAt" yaml:"savedAt"`
	Profile   profile.Profile `json:"profile" yaml:"profile"`
}

// Snapshot captures the current session.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		SessionID: c.session.String(),
		Step:      c.cursor,
		Completed: c.completed,
		SavedAt:   time.Now().UTC(),
		Profile:   c.aggregate.Clone(),
	}
}

// Restore rebuilds a controller from a snapshot. Stored records are not
// re-validated; each form validates again on submit.
func Restore(s Snapshot, opts ...Option) (*Controller, error) {
	if s.Step < 1 || s.Step > profile.TopicCount {
		return nil, fmt.Errorf("%w: step %d", ErrInvalidSnapshot, s.Step)
	}
	id, err := uuid.Parse(s.SessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: session id: %v", ErrInvalidSnapshot, err)
	}

	c := New(append([]Option{WithSessionID(id)}, opts...)...)
	c.cursor = s.Step
	c.completed = s.Completed
	c.aggregate = s.Profile.Clone()
	c.logger.Info("session restored",
		zap.String("session", c.session.String()),
		zap.Int("step", c.cursor),
		zap.Int("topics", c.aggregate.Len()),
	)
	return c, nil
}

// WriteSnapshot stores the snapshot as YAML.
func WriteSnapshot(path string, s Snapshot) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("wizard: encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("wizard: write snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot loads a snapshot written by WriteSnapshot. JSON files are
// accepted as well since YAML is a superset.
func ReadSnapshot(path string) (Snapshot, error) {
	var s Snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("wizard: read snapshot: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return s, nil
}
