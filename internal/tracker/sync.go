package tracker

import (
	"context"
	"sort"
	"strconv"

	"hrtrack/internal/models"
)

const dateOnly = "2006-01-02"

// Sync reconciles local state against the server's attendance records. It
// is safe to call from anywhere at any time: overlapping calls are dropped
// by the in-flight guard, and every failure is logged and swallowed so an
// opportunistic sync never interrupts the user.
func (t *Tracker) Sync(ctx context.Context) {
	t.mu.Lock()
	uid := t.userID
	t.mu.Unlock()
	if uid == "" {
		return
	}

	if !t.syncInFlight.CompareAndSwap(false, true) {
		return
	}
	defer t.syncInFlight.Store(false)

	t.setLoading(true)
	defer t.setLoading(false)

	now := t.now()
	// Two days of lookback covers a shift that started yesterday and is
	// still open, plus records written slightly out of order.
	from := now.AddDate(0, 0, -2).Format(dateOnly)
	today := now.Format(dateOnly)

	summary, err := t.api.MySummary(ctx, from, today)
	if err != nil {
		t.log.Warn("attendance sync failed", "error", err)
		return
	}

	records := summary.Records
	sort.SliceStable(records, func(i, j int) bool {
		// ISO dates compare correctly as strings.
		return records[i].Date > records[j].Date
	})

	var openRecord, lastClosed *models.AttendanceRecord
	for i := range records {
		r := &records[i]
		if day, err := r.Day(); err == nil && day.Format(dateOnly) == today {
			if r.Closed() {
				// Already checked out today.
				lastClosed = r
				break
			}
		}
		// The first open record, scanning newest first, is the live shift.
		// A stale open record from a prior day is accepted on purpose: it
		// models a shift that was never closed.
		if r.Open() {
			openRecord = r
			break
		}
	}

	switch {
	case openRecord != nil:
		checkIn, err := openRecord.CheckInAt()
		if err != nil {
			t.log.Warn("attendance sync: unusable open record", "date", openRecord.Date, "error", err)
			return
		}
		duration := ShiftDurationFor(checkIn)
		shiftEnd := checkIn.Add(duration)

		t.mu.Lock()
		t.status = CheckedIn
		t.checkInTime = &checkIn
		t.shiftEndTime = &shiftEnd
		t.mu.Unlock()

		checkInKey, shiftEndKey, durationKey := sessionKeys(uid)
		err = t.kv.MultiSet(map[string]string{
			checkInKey:  strconv.FormatInt(checkIn.UnixMilli(), 10),
			shiftEndKey: strconv.FormatInt(shiftEnd.UnixMilli(), 10),
			durationKey: strconv.Itoa(int(duration.Seconds())),
		})
		if err != nil {
			t.log.Warn("failed to persist session", "error", err)
		}

		if shiftEnd.After(t.now()) {
			t.startCountdown(shiftEnd)
		} else {
			t.stopCountdown()
			t.setRemaining(0)
		}

	case lastClosed != nil:
		t.clearLocal()
		t.setStatus(CheckedOut)

	default:
		t.clearLocal()
	}
}
