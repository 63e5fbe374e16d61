package model

// StateCodes is the closed set of two-letter US state codes offered on the
// venue and artist forms, in form display order.
var StateCodes = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

var stateSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(StateCodes))
	for _, s := range StateCodes {
		m[s] = struct{}{}
	}
	return m
}()

// ValidState reports whether code is a member of the closed state set.
func ValidState(code string) bool {
	_, ok := stateSet[code]
	return ok
}
