package analytics

import (
	"slices"
	"time"
)

// streakThreshold is the number of consecutive failed campaigns that makes
// an employee a repeat offender. It is also the minimum number of campaigns
// an employee must have been sent to be eligible.
const streakThreshold = 2

// compareTime orders timestamps ascending with zero (unorderable) values
// after every real timestamp. Zero values compare equal to each other so a
// stable sort keeps their input order.
func compareTime(a, b time.Time) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	}
	return a.Compare(b)
}

// distinctCampaigns orders sent occurrences by timestamp, falling back to
// input order, and keeps the first occurrence of every campaign so a
// duplicated send cannot stand in for a second campaign.
func distinctCampaigns(occ []sentOccurrence) []string {
	ordered := slices.Clone(occ)
	slices.SortStableFunc(ordered, func(a, b sentOccurrence) int {
		if c := compareTime(a.at, b.at); c != 0 {
			return c
		}
		return a.seq - b.seq
	})

	seen := make(map[string]struct{}, len(ordered))
	out := make([]string, 0, len(ordered))
	for _, o := range ordered {
		if _, ok := seen[o.campaignID]; ok {
			continue
		}
		seen[o.campaignID] = struct{}{}
		out = append(out, o.campaignID)
	}
	return out
}

// isRepeatOffender walks the campaigns in order keeping a consecutive
// failure streak. It stops at the first streak of streakThreshold.
func isRepeatOffender(employeeID string, campaigns []string, failed pairSet) bool {
	streak := 0
	for _, c := range campaigns {
		if !failed.has(pair{employeeID: employeeID, campaignID: c}) {
			streak = 0
			continue
		}
		streak++
		if streak >= streakThreshold {
			return true
		}
	}
	return false
}

type offenderTally struct {
	eligible  int
	offenders int
}

// repeatOffenders tallies eligible employees and offenders per department.
func (idx *index) repeatOffenders() map[string]offenderTally {
	out := make(map[string]offenderTally)
	for employeeID, occ := range idx.sent {
		campaigns := distinctCampaigns(occ)
		if len(campaigns) < streakThreshold {
			continue
		}
		dept := idx.employeeDepartment(employeeID)
		t := out[dept]
		t.eligible++
		if isRepeatOffender(employeeID, campaigns, idx.failed) {
			t.offenders++
		}
		out[dept] = t
	}
	return out
}
