package types

// TimeToken is a coarse time of day as reported by the voice platform's time slot
type TimeToken string

const (
	TimeTokenMorning   TimeToken = "MO"
	TimeTokenAfternoon TimeToken = "AF"
	TimeTokenEvening   TimeToken = "EV"
	TimeTokenNight     TimeToken = "NI"
)

var timeTokenClock = map[TimeToken]string{
	TimeTokenMorning:   "09:00",
	TimeTokenAfternoon: "13:00",
	TimeTokenEvening:   "19:00",
	TimeTokenNight:     "21:00",
}

// AllTimeTokens returns all coarse time tokens
func AllTimeTokens() []TimeToken {
	return []TimeToken{
		TimeTokenMorning,
		TimeTokenAfternoon,
		TimeTokenEvening,
		TimeTokenNight,
	}
}

// IsValid checks if the token is one of the coarse time tokens
func (t TimeToken) IsValid() bool {
	_, ok := timeTokenClock[t]
	return ok
}

// NormalizeTime converts a time slot value into a 24-hour HH:mm clock time.
// Coarse tokens map to fixed clock times; any other value is returned unchanged
// and is expected to already be an HH:mm literal.
func NormalizeTime(token string) string {
	if clock, ok := timeTokenClock[TimeToken(token)]; ok {
		return clock
	}
	return token
}
