package tracker

// Session entries are namespaced per user so two accounts on the same
// machine never see each other's shift.
const (
	keyCheckInBase  = "checkInTimestamp"
	keyShiftEndBase = "shiftEndTimestamp"
	keyDurationBase = "shiftDurationSeconds"
)

func userKey(base, userID string) string {
	return "attendance_" + base + "_" + userID
}

// sessionKeys returns the three per-user keys, always handled as a unit.
func sessionKeys(userID string) (checkIn, shiftEnd, duration string) {
	return userKey(keyCheckInBase, userID),
		userKey(keyShiftEndBase, userID),
		userKey(keyDurationBase, userID)
}
