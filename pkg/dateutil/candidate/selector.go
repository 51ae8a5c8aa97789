// Package candidate implements the Candidate Selector (spec.md §4.3): the
// voting algorithm that picks a single winning date out of a frequency map
// of competing candidates.
package candidate

import "math"

// Entry is one distinct candidate date together with how many times it
// was observed in the scanned document.
type Entry struct {
	Year, Month, Day int
	Count            int
}

// before reports whether e predates other (day precision).
func (e Entry) before(other Entry) bool {
	if e.Year != other.Year {
		return e.Year < other.Year
	}
	if e.Month != other.Month {
		return e.Month < other.Month
	}
	return e.Day < other.Day
}

// Select runs the two-stage algorithm of spec.md §4.3 over entries:
//
//  1. Discard entries whose year falls outside [minYear, maxYear].
//  2. Group survivors by year and find the mode year (highest total
//     count), ties broken toward the earliest year when original is
//     true, the latest otherwise.
//  3. Within the mode year, discard entries whose count is below
//     max(2, ceil(0.10 * modeYearTotal)), unless that would eliminate
//     every survivor — boilerplate years should not beat a one-off
//     dateline, but a one-off stray shouldn't beat a repeated date either.
//  4. Among what's left, pick the earliest date when original is true,
//     the latest otherwise.
//
// Select returns ok == false iff no entry survives step 1.
func Select(entries []Entry, original bool, minYear, maxYear int) (Entry, bool) {
	plausible := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Year >= minYear && e.Year <= maxYear {
			plausible = append(plausible, e)
		}
	}
	if len(plausible) == 0 {
		return Entry{}, false
	}

	yearTotals := map[int]int{}
	for _, e := range plausible {
		yearTotals[e.Year] += e.Count
	}

	modeYear, modeTotal := 0, -1
	for year, total := range yearTotals {
		switch {
		case total > modeTotal:
			modeYear, modeTotal = year, total
		case total == modeTotal:
			if original && year < modeYear {
				modeYear = year
			}
			if !original && year > modeYear {
				modeYear = year
			}
		}
	}

	var inYear []Entry
	for _, e := range plausible {
		if e.Year == modeYear {
			inYear = append(inYear, e)
		}
	}

	threshold := int(math.Ceil(float64(modeTotal) * 0.10))
	if threshold < 2 {
		threshold = 2
	}
	var survivors []Entry
	for _, e := range inYear {
		if e.Count >= threshold {
			survivors = append(survivors, e)
		}
	}
	if len(survivors) == 0 {
		survivors = inYear
	}

	winner := survivors[0]
	for _, e := range survivors[1:] {
		if original && e.before(winner) {
			winner = e
		}
		if !original && winner.before(e) {
			winner = e
		}
	}
	return winner, true
}
