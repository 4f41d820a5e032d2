package wizard_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-intake/pkg/forms"
	"github.com/goliatone/go-intake/pkg/logging"
	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/profile/profiletest"
	"github.com/goliatone/go-intake/pkg/wizard"
	"github.com/goliatone/go-intake/pkg/wizard/wizardtest"
)

func TestNewStartsOnFirstStep(t *testing.T) {
	c := wizard.New()
	step := c.Current()

	assert.Equal(t, 1, step.Index)
	assert.Equal(t, profile.TopicBasicInfo, step.Key)
	assert.True(t, step.First())
	assert.InDelta(t, 1.0/15, c.Progress(), 1e-9)
	assert.Zero(t, c.Profile().Len())
	assert.False(t, c.Completed())
}

func TestAdvanceAndRetreat(t *testing.T) {
	c := wizard.New()

	require.NoError(t, c.Advance(profile.TopicBasicInfo, profiletest.BasicInfo()))
	require.NoError(t, c.Advance(profile.TopicBusinessHours, profiletest.BusinessHours()))
	assert.Equal(t, 3, c.Cursor())
	assert.Equal(t, profile.TopicCapacity, c.Current().Key)

	c.Retreat()
	c.Retreat()
	c.Retreat()
	assert.Equal(t, 1, c.Cursor(), "retreat floors at the first step")
	assert.Equal(t, 2, c.Profile().Len(), "retreat keeps submitted topics")
}

func TestAdvanceRejectsMisuse(t *testing.T) {
	c := wizard.New()

	err := c.Advance("unknown", profiletest.BasicInfo())
	assert.True(t, errors.Is(err, profile.ErrUnknownTopic))

	err = c.Advance(profile.TopicCapacity, profiletest.BasicInfo())
	assert.True(t, errors.Is(err, profile.ErrTopicMismatch))
	assert.Equal(t, 1, c.Cursor())
}

func TestLastStepCompletes(t *testing.T) {
	var got []profile.Profile
	c := wizard.New(wizard.WithOnComplete(func(p profile.Profile) { got = append(got, p) }))

	for _, topic := range profile.Topics() {
		require.NoError(t, c.Advance(topic.Key, profiletest.Topic(topic.Key)))
	}

	assert.True(t, c.Completed())
	assert.Equal(t, profile.TopicCount, c.Cursor(), "cursor stays on the last step")
	assert.InDelta(t, 1.0, c.Progress(), 1e-9)
	require.Len(t, got, 1)
	assert.True(t, got[0].Complete())
	if diff := cmp.Diff(profiletest.Profile(), got[0], cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("completed profile mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileIsACopy(t *testing.T) {
	c := wizard.New()
	require.NoError(t, c.Advance(profile.TopicObjectives, profiletest.Objectives()))

	p := c.Profile()
	p.Objectives.Objectives = "changed"
	assert.Equal(t, profiletest.Objectives().Objectives, c.Profile().Objectives.Objectives)
}

func TestPageContextCarriesServiceNames(t *testing.T) {
	c := wizard.New()
	assert.Empty(t, c.PageContext().ServiceNames)

	require.NoError(t, c.Advance(profile.TopicServices, profiletest.Services()))
	assert.Equal(t, profiletest.Services().Names(), c.PageContext().ServiceNames)
}

func TestFormSeedsPriorAndAdvances(t *testing.T) {
	c := wizard.New()
	require.NoError(t, c.Advance(profile.TopicBasicInfo, profiletest.BasicInfo()))
	c.Retreat()

	handle, err := c.Form(forms.WithSaveDelay(0))
	require.NoError(t, err)
	assert.Equal(t, profile.TopicBasicInfo, handle.Key())
	if diff := cmp.Diff(profiletest.BasicInfo(), handle.Value(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("form not seeded from prior (-want +got):\n%s", diff)
	}

	require.NoError(t, handle.Submit(context.Background()))
	assert.Equal(t, 2, c.Cursor())
}

func TestFormRejectionKeepsCursor(t *testing.T) {
	c := wizard.New()
	handle, err := c.Form(forms.WithSaveDelay(0))
	require.NoError(t, err)

	err = handle.Submit(context.Background())
	_, ok := forms.IsValidation(err)
	assert.True(t, ok, "empty basic info must fail validation")
	assert.Equal(t, 1, c.Cursor())
	assert.Zero(t, c.Profile().Len())
}

func TestFastFill(t *testing.T) {
	c := wizard.New()
	require.NoError(t, wizardtest.FastFill(c))

	assert.Equal(t, wizardtest.FastFillStep, c.Cursor())
	assert.Equal(t, profile.TopicSpecialties, c.Current().Key)
	assert.Equal(t, profile.TopicCount-1, c.Profile().Len())
	assert.False(t, c.Profile().Has(profile.TopicStandardResponses))

	got := wizardtest.Complete(t, c)
	assert.True(t, got.Complete())
	assert.True(t, got.Validate().Valid)
}

func TestEndToEnd(t *testing.T) {
	completed := 0
	c := wizard.New(wizard.WithOnComplete(func(profile.Profile) { completed++ }))

	got := wizardtest.Complete(t, c)
	assert.Equal(t, 1, completed)
	if diff := cmp.Diff(profiletest.Profile(), got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestJumpBounds(t *testing.T) {
	c := wizard.New()
	assert.ErrorIs(t, wizardtest.Jump(c, 0, profile.Profile{}), wizard.ErrInvalidSnapshot)
	assert.ErrorIs(t, wizardtest.Jump(c, 16, profile.Profile{}), wizard.ErrInvalidSnapshot)

	require.NoError(t, wizardtest.Jump(c, 3, profile.Profile{}))
	assert.Equal(t, 3, c.Cursor())
}

func TestControllerHasNoBulkSetter(t *testing.T) {
	typ := reflect.TypeOf(&wizard.Controller{})
	for i := 0; i < typ.NumMethod(); i++ {
		name := typ.Method(i).Name
		assert.NotContains(t, []string{"ForceState", "Jump", "SetState"}, name)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	id := uuid.New()
	c := wizard.New(wizard.WithSessionID(id))
	require.NoError(t, c.Advance(profile.TopicBasicInfo, profiletest.BasicInfo()))
	require.NoError(t, c.Advance(profile.TopicBusinessHours, profiletest.BusinessHours()))
	require.NoError(t, c.Advance(profile.TopicCapacity, profiletest.Capacity()))

	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, wizard.WriteSnapshot(path, c.Snapshot()))

	snap, err := wizard.ReadSnapshot(path)
	require.NoError(t, err)

	restored, err := wizard.Restore(snap)
	require.NoError(t, err)
	assert.Equal(t, id, restored.SessionID())
	assert.Equal(t, c.Cursor(), restored.Cursor())
	if diff := cmp.Diff(c.Profile(), restored.Profile(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestRestoreRejectsBadSnapshots(t *testing.T) {
	_, err := wizard.Restore(wizard.Snapshot{SessionID: uuid.NewString(), Step: 0})
	assert.ErrorIs(t, err, wizard.ErrInvalidSnapshot)

	_, err = wizard.Restore(wizard.Snapshot{SessionID: "nope", Step: 3})
	assert.ErrorIs(t, err, wizard.ErrInvalidSnapshot)
}

func TestControllerLogsTransitions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := wizard.New(wizard.WithLogger(logging.FromZap(zap.New(core))))

	require.NoError(t, c.Advance(profile.TopicBasicInfo, profiletest.BasicInfo()))
	c.Retreat()

	advanced := logs.FilterMessage("step advanced").All()
	require.Len(t, advanced, 1)
	assert.Equal(t, "basicInfo", advanced[0].ContextMap()["topic"])
	assert.Equal(t, 1, logs.FilterMessage("step retreated").Len())
}
