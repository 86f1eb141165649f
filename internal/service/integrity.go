package service

import (
	"context"
	"fmt"
	"time"
)

// DoctorReport describes the health of the stored state.
type DoctorReport struct {
	StatePresent bool     `json:"state_present"`
	StateValid   bool     `json:"state_valid"`
	StateError   string   `json:"state_error,omitempty"`
	UnknownKeys  []string `json:"unknown_keys"`
	ClearedState bool     `json:"cleared_state,omitempty"`
}

// Healthy reports whether the doctor found nothing to fix.
func (r DoctorReport) Healthy() bool {
	return (!r.StatePresent || r.StateValid) && len(r.UnknownKeys) == 0
}

// KeyedStore is a ByteStore that can enumerate its keys.
type KeyedStore interface {
	ByteStore
	Keys(ctx context.Context) ([]string, error)
}

// RunDoctor checks that the stored state decodes and that no foreign keys sit
// next to it. With fix set an undecodable state is removed so the next load
// starts from the defaults.
func RunDoctor(ctx context.Context, kv KeyedStore, fix bool) (DoctorReport, error) {
	report := DoctorReport{UnknownKeys: []string{}}
	keys, err := kv.Keys(ctx)
	if err != nil {
		return report, fmt.Errorf("doctor key scan: %w", err)
	}
	for _, k := range keys {
		if k != StorageKey {
			report.UnknownKeys = append(report.UnknownKeys, k)
		}
	}

	raw, ok, err := kv.Get(ctx, StorageKey)
	if err != nil {
		return report, fmt.Errorf("doctor state read: %w", err)
	}
	report.StatePresent = ok
	if !ok {
		return report, nil
	}
	if _, err := MergeOverDefaults(raw, time.Now()); err != nil {
		report.StateError = err.Error()
	} else {
		report.StateValid = true
	}

	if fix && !report.StateValid {
		if err := kv.Remove(ctx, StorageKey); err != nil {
			return report, fmt.Errorf("doctor fix state: %w", err)
		}
		report.ClearedState = true
	}
	return report, nil
}
