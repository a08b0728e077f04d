package tracker

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"hrtrack/internal/geo"
	"hrtrack/internal/models"
)

// Status is the client's view of today's attendance phase.
type Status int

const (
	NotCheckedIn Status = iota
	CheckedIn
	CheckedOut
)

func (s Status) String() string {
	switch s {
	case CheckedIn:
		return "checked in"
	case CheckedOut:
		return "checked out"
	default:
		return "not checked in"
	}
}

// SummaryAPI fetches the server-side attendance truth.
type SummaryAPI interface {
	MySummary(ctx context.Context, from, to string) (*models.AttendanceSummary, error)
}

// PunchAPI submits geo-located check-in/check-out events.
type PunchAPI interface {
	GeoCheckIn(ctx context.Context, punch models.GeoPunch) error
	GeoCheckOut(ctx context.Context, punch models.GeoPunch) error
}

// API is the attendance surface of the backend client.
type API interface {
	SummaryAPI
	PunchAPI
}

// KV is the persistent key-value store the session is mirrored into. All
// three session keys are written and removed together.
type KV interface {
	MultiGet(keys ...string) (map[string]string, error)
	MultiSet(pairs map[string]string) error
	MultiRemove(keys ...string) error
}

// Notifier surfaces user-facing notices for check-in/check-out outcomes.
type Notifier interface {
	Successf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Session is a point-in-time snapshot of the tracker state.
type Session struct {
	UserID           string
	Status           Status
	CheckInTime      *time.Time
	ShiftEndTime     *time.Time
	RemainingSeconds int
	Loading          bool
}

// Tracker owns the current attendance state, the countdown to shift end,
// and reconciliation against the server. The server is the source of truth;
// local state is a cache that Sync overwrites.
type Tracker struct {
	api    API
	kv     KV
	geo    geo.Provider
	notify Notifier
	log    *slog.Logger

	now       func() time.Time
	tickEvery time.Duration

	syncInFlight atomic.Bool

	mu           sync.Mutex
	userID       string
	status       Status
	checkInTime  *time.Time
	shiftEndTime *time.Time
	remaining    int
	loading      bool
	countdown    *countdown
	onTick       func(remaining int)
}

// New creates a tracker with no session. Call Bootstrap and Sync once the
// user id is known.
func New(api API, kv KV, provider geo.Provider, notify Notifier) *Tracker {
	return &Tracker{
		api:       api,
		kv:        kv,
		geo:       provider,
		notify:    notify,
		log:       slog.Default(),
		now:       time.Now,
		tickEvery: time.Second,
	}
}

// Session returns a snapshot of the current state.
func (t *Tracker) Session() Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Session{
		UserID:           t.userID,
		Status:           t.status,
		CheckInTime:      t.checkInTime,
		ShiftEndTime:     t.shiftEndTime,
		RemainingSeconds: t.remaining,
		Loading:          t.loading,
	}
}

// Subscribe registers a callback invoked with the remaining seconds on
// every countdown tick. Pass nil to unsubscribe.
func (t *Tracker) Subscribe(fn func(remaining int)) {
	t.mu.Lock()
	t.onTick = fn
	t.mu.Unlock()
}

// Bootstrap restores a best-effort session from the persistent store so the
// display is not empty before the first server round-trip. Malformed or
// missing entries are treated as "no session", never as an error.
func (t *Tracker) Bootstrap(userID string) {
	if userID == "" {
		return
	}
	t.mu.Lock()
	t.userID = userID
	t.mu.Unlock()

	checkInKey, shiftEndKey, _ := sessionKeys(userID)
	vals, err := t.kv.MultiGet(checkInKey, shiftEndKey)
	if err != nil {
		t.log.Warn("failed to read persisted session", "error", err)
		return
	}

	checkIn, ok1 := parseEpochMillis(vals[checkInKey])
	shiftEnd, ok2 := parseEpochMillis(vals[shiftEndKey])
	if !ok1 || !ok2 {
		return
	}

	t.mu.Lock()
	t.status = CheckedIn
	t.checkInTime = &checkIn
	t.shiftEndTime = &shiftEnd
	t.mu.Unlock()

	if shiftEnd.After(t.now()) {
		t.startCountdown(shiftEnd)
	} else {
		t.setRemaining(0)
	}
}

// Reset drops the in-memory session without touching the persistent store,
// so switching users cannot leak the previous user's session into the
// display. The caller follows up with Bootstrap and Sync for the new user.
func (t *Tracker) Reset() {
	t.stopCountdown()
	t.mu.Lock()
	t.userID = ""
	t.status = NotCheckedIn
	t.checkInTime = nil
	t.shiftEndTime = nil
	t.remaining = 0
	t.mu.Unlock()
}

// Close releases the countdown goroutine, if any.
func (t *Tracker) Close() {
	t.stopCountdown()
}

// clearLocal resets state to NotCheckedIn and removes the persisted session
// entries for the current user.
func (t *Tracker) clearLocal() {
	t.stopCountdown()
	t.mu.Lock()
	uid := t.userID
	t.status = NotCheckedIn
	t.checkInTime = nil
	t.shiftEndTime = nil
	t.remaining = 0
	t.mu.Unlock()

	if uid != "" {
		checkInKey, shiftEndKey, durationKey := sessionKeys(uid)
		if err := t.kv.MultiRemove(checkInKey, shiftEndKey, durationKey); err != nil {
			t.log.Warn("failed to clear persisted session", "error", err)
		}
	}
}

func (t *Tracker) setStatus(s Status) {
	t.mu.Lock()
	t.status = s
	t.mu.Unlock()
}

func (t *Tracker) setLoading(v bool) {
	t.mu.Lock()
	t.loading = v
	t.mu.Unlock()
}

func parseEpochMillis(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil || ms <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}
