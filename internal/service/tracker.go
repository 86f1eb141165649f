package service

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/saadjs/lifetrack-cli/internal/model"
)

var ErrResetNotConfirmed = errors.New("reset requires confirmation")

// Tracker owns the in-memory state for one session. It loads once at
// construction and saves after every applied mutation. A failed save is
// logged and the in-memory state stays authoritative.
type Tracker struct {
	store   *Store
	mutator Mutator
	logger  *log.Logger
	state   model.UserData
}

func NewTracker(ctx context.Context, store *Store, mutator Mutator, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Tracker{
		store:   store,
		mutator: mutator,
		logger:  logger,
		state:   store.Load(ctx),
	}
}

// State returns the current snapshot.
func (t *Tracker) State() model.UserData {
	return t.state
}

func (t *Tracker) Mutator() Mutator {
	return t.mutator
}

// commit installs next and persists it.
func (t *Tracker) commit(ctx context.Context, next model.UserData) {
	t.state = next
	if err := t.store.Save(ctx, next); err != nil {
		t.logger.Printf("%v; keeping changes in memory", err)
	}
}

// apply commits next when ok and passes ok through.
func (t *Tracker) apply(ctx context.Context, next model.UserData, ok bool) bool {
	if ok {
		t.commit(ctx, next)
	}
	return ok
}

func (t *Tracker) UpdateFields(ctx context.Context, u FieldUpdate) model.UserData {
	t.commit(ctx, t.mutator.ApplyFieldUpdate(t.state, u))
	return t.state
}

// AddWeight returns false when the entry was rejected.
func (t *Tracker) AddWeight(ctx context.Context, e model.WeightEntry) bool {
	next, ok := t.mutator.appendWeight(t.state, e)
	return t.apply(ctx, next, ok)
}

func (t *Tracker) AddStudySession(ctx context.Context, s model.StudySession) bool {
	next, ok := t.mutator.appendStudy(t.state, s)
	return t.apply(ctx, next, ok)
}

func (t *Tracker) AddWorkoutSession(ctx context.Context, w model.WorkoutSession) bool {
	next, ok := t.mutator.appendWorkout(t.state, w)
	return t.apply(ctx, next, ok)
}

func (t *Tracker) AddWalkingEntry(ctx context.Context, e model.WalkingEntry) bool {
	next, ok := t.mutator.appendWalking(t.state, e)
	return t.apply(ctx, next, ok)
}

func (t *Tracker) AddCravingEntry(ctx context.Context, c model.CravingEntry) bool {
	next, ok := t.mutator.appendCraving(t.state, c)
	return t.apply(ctx, next, ok)
}

func (t *Tracker) ToggleDayCompleted(ctx context.Context, day string) error {
	next, err := t.mutator.ToggleDayCompleted(t.state, day)
	if err != nil {
		return err
	}
	t.commit(ctx, next)
	return nil
}

func (t *Tracker) ToggleActivity(ctx context.Context, day string, activity Activity) error {
	next, err := t.mutator.ToggleActivity(t.state, day, activity)
	if err != nil {
		return err
	}
	t.commit(ctx, next)
	return nil
}

// Import replaces the state with the parsed snapshot. On a parse error the
// current state is kept.
func (t *Tracker) Import(ctx context.Context, raw []byte) error {
	next, err := ImportSnapshot(raw, t.mutator.now())
	if err != nil {
		return err
	}
	t.commit(ctx, next)
	return nil
}

// Export renders the current state for download.
func (t *Tracker) Export() ([]byte, error) {
	return ExportSnapshot(t.state)
}

// Reset discards all state. confirmed must be true. The stored entry is
// removed and the defaults are installed in memory; a failed removal is
// logged like a failed save.
func (t *Tracker) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrResetNotConfirmed
	}
	t.state = t.mutator.ResetState()
	if err := t.store.Clear(ctx); err != nil {
		t.logger.Printf("%v; keeping changes in memory", err)
	}
	return nil
}
