package domain

import "time"

// SessionIDFormat is the timestamp layout session ids are generated from,
// chosen so lexicographic order matches chronological order.
const SessionIDFormat = "2006-01-02_15-04-05"

// NewSessionID generates a session id from the given time.
func NewSessionID(t time.Time) string {
	return t.Format(SessionIDFormat)
}

// Session is an ordered sequence of item records sharing (profile, scope,
// session id). Records are appended one per viewed item and the session is
// persisted after every append, so its length truthfully reflects progress
// at any point, including after a crash.
type Session struct {
	Profile string       `json:"profile"`
	Scope   Scope        `json:"scope"`
	ID      string       `json:"session_id"`
	Records []ItemRecord `json:"records"`
}

// Complete reports whether the session reached the target length for its scope.
func (s *Session) Complete(target int) bool {
	return len(s.Records) >= target
}

// RegionCounts tallies records per region label. Records without a region
// label are counted under the empty key so callers can track the unlabeled
// denominator.
func (s *Session) RegionCounts() map[string]int {
	counts := map[string]int{}
	for i := range s.Records {
		region, ok := s.Records[i].RegionLabel()
		if !ok {
			counts[""]++
			continue
		}
		counts[region]++
	}
	return counts
}

// RelatedCount counts training records flagged as conflict-related.
func (s *Session) RelatedCount() int {
	n := 0
	for i := range s.Records {
		if s.Records[i].Related() {
			n++
		}
	}
	return n
}
