package availability

import "fmt"

// Interval is a half-open [Start, End) span in minutes from midnight.
// End is exclusive, so a slot ending exactly when another begins does not
// conflict and back-to-back bookings are allowed.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals intersect.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// ParseClock converts an "HH:MM" wall-clock string to minutes from midnight.
func ParseClock(clock string) (int, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	return hh*60 + mm, nil
}

// FormatClock converts minutes from midnight to an "HH:MM" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GenerateSlots enumerates candidate start times (minutes from midnight) at
// the given step between open and close, keeping candidates whose interval
// fits before close and touches none of the busy intervals. Candidates at or
// before cutoff are skipped; pass a negative cutoff to disable the check.
func GenerateSlots(open, close, duration, step int, busy []Interval, cutoff int) []int {
	if duration <= 0 || step <= 0 {
		return nil
	}

	var slots []int
	for start := open; start < close; start += step {
		end := start + duration
		if end > close {
			break
		}
		if start <= cutoff {
			continue
		}
		if overlapsAny(Interval{Start: start, End: end}, busy) {
			continue
		}
		slots = append(slots, start)
	}
	return slots
}

func overlapsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}
