package domain

import "strings"

type TrafficStatus string

const (
	StatusFluid    TrafficStatus = "FLUID"
	StatusSlow     TrafficStatus = "SLOW"
	StatusStall    TrafficStatus = "STALL"
	StatusAccident TrafficStatus = "ACCIDENT"
	StatusClosure  TrafficStatus = "CLOSURE"
)

// AllStatuses lists the statuses from least to most disruptive.
var AllStatuses = []TrafficStatus{
	StatusFluid,
	StatusSlow,
	StatusStall,
	StatusAccident,
	StatusClosure,
}

// Severity is the zero-based rank of the status in AllStatuses, -1 when unknown.
func (s TrafficStatus) Severity() int {
	for i, st := range AllStatuses {
		if st == s {
			return i
		}
	}
	return -1
}

func (s TrafficStatus) Valid() bool {
	return s.Severity() >= 0
}

func (s TrafficStatus) String() string {
	return string(s)
}

// ParseTrafficStatus accepts any letter case and surrounding spaces.
func ParseTrafficStatus(raw string) (TrafficStatus, bool) {
	st := TrafficStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !st.Valid() {
		return "", false
	}
	return st, true
}

// MoreSevere reports whether a disrupts traffic more than b.
func MoreSevere(a, b TrafficStatus) bool {
	return a.Severity() > b.Severity()
}
