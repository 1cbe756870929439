package domain

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
)

// InstanceID identifies one running process in the registry.
// A new value is generated on every start and never reused.
type InstanceID string

// Timestamp is a wall-clock instant in milliseconds since Unix epoch.
// It is the value stored for each instance in the registry hash.
type Timestamp int64

// UnreadableTimestamp stands for a stored value that could not be parsed.
// It is older than any real Timestamp, so such entries are always stale.
const UnreadableTimestamp Timestamp = math.MinInt64

// TimestampFromTime converts t to a millisecond Timestamp (sub-millisecond part is dropped).
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}

// ParseTimestamp parses the decimal text written by Timestamp.String.
// Negative values are rejected.
func ParseTimestamp(s string) (Timestamp, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid timestamp %q: negative", s)
	}
	return Timestamp(v), nil
}

// Time returns ts as a UTC time.Time.
func (ts Timestamp) Time() time.Time {
	return time.UnixMilli(int64(ts)).UTC()
}

func (ts Timestamp) String() string {
	return strconv.FormatInt(int64(ts), 10)
}

// Snapshot is the full registry content as read in a single pass. Unordered.
type Snapshot map[InstanceID]Timestamp

// IsStale reports whether lastSeen is older than threshold at now.
// An entry exactly threshold old is not stale, one from the future never is.
func IsStale(now, lastSeen Timestamp, threshold time.Duration) bool {
	if lastSeen >= now {
		return false
	}
	// now-lastSeen may wrap as int64 but always fits in uint64 here.
	return uint64(now-lastSeen) > uint64(threshold.Milliseconds())
}

// IDSet is a set of instance ids.
type IDSet map[InstanceID]struct{}

// Add inserts id into the set.
func (s IDSet) Add(id InstanceID) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s IDSet) Has(id InstanceID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s IDSet) Len() int {
	return len(s)
}

// Sorted returns the ids in lexical order, for stable logs and tests.
func (s IDSet) Sorted() []InstanceID {
	out := make([]InstanceID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
