package tracker

import (
	"context"
	"errors"

	"hrtrack/internal/geo"
	"hrtrack/internal/models"
)

// CheckIn captures the device location and submits a check-in. State is
// never set optimistically: the server's recorded time is authoritative, so
// a successful submission is followed by a Sync. On any failure the local
// state is left untouched and a notice is surfaced.
func (t *Tracker) CheckIn(ctx context.Context) {
	t.setLoading(true)
	defer t.setLoading(false)

	pos, ok := t.capturePosition(ctx)
	if !ok {
		return
	}

	err := t.api.GeoCheckIn(ctx, models.GeoPunch{
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
		Accuracy:  pos.Accuracy,
	})
	if err != nil {
		t.notify.Errorf("Check-in failed: %v", err)
		return
	}

	t.Sync(ctx)
	t.notify.Successf("Checked in successfully")
}

// CheckOut captures the device location and submits a check-out. On success
// the local session is cleared immediately and marked checked out, then a
// Sync verifies against the server. Confirmation of the action is the
// caller's job.
func (t *Tracker) CheckOut(ctx context.Context) {
	t.setLoading(true)
	defer t.setLoading(false)

	pos, ok := t.capturePosition(ctx)
	if !ok {
		return
	}

	err := t.api.GeoCheckOut(ctx, models.GeoPunch{
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
		Accuracy:  pos.Accuracy,
	})
	if err != nil {
		t.notify.Errorf("Check-out failed: %v", err)
		return
	}

	t.clearLocal()
	t.setStatus(CheckedOut)
	t.notify.Successf("Checked out successfully")

	t.Sync(ctx)
}

// capturePosition runs the permission request and the high-accuracy fetch,
// surfacing notices on failure.
func (t *Tracker) capturePosition(ctx context.Context) (geo.Position, bool) {
	if err := t.geo.RequestPermission(ctx); err != nil {
		if errors.Is(err, geo.ErrPermissionDenied) {
			t.notify.Errorf("Location permission is required")
		} else {
			t.notify.Errorf("Location permission request failed: %v", err)
		}
		return geo.Position{}, false
	}

	pos, err := t.geo.Current(ctx)
	if err != nil {
		t.notify.Errorf("Could not determine location: %v", err)
		return geo.Position{}, false
	}
	return pos, true
}
