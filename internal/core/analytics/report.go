// Package analytics turns a snapshot of phishing interaction events and the
// employee directory into per-department click, submission and
// repeat-offender rates. Everything here is a pure function of its inputs.
package analytics

import (
	"slices"
	"strings"

	"phish-analytics/internal/core/domain"
)

// BuildReport computes the department report. It never fails: events
// without an employee, a campaign or a canonical action are skipped and
// counted in Report.SkippedEvents. GeneratedAt is left for the caller.
func BuildReport(events []domain.Event, employees []domain.Employee) domain.Report {
	idx := buildIndex(events, employees)
	tallies := idx.repeatOffenders()
	noSent := idx.totalSent() == 0

	rows := make([]domain.DepartmentMetrics, 0, len(idx.buckets)+len(tallies))
	for name, b := range idx.buckets {
		row := domain.DepartmentMetrics{
			Department:     name,
			SentPairs:      len(b.sent),
			ClickedPairs:   len(b.clicked),
			SubmittedPairs: len(b.submitted),
		}
		if !noSent {
			row.ClickRate = percent(row.ClickedPairs, row.SentPairs)
			row.SubmissionRate = percent(row.SubmittedPairs, row.SentPairs)
		}
		if t, ok := tallies[name]; ok {
			row.RepeatEligible = t.eligible
			row.RepeatOffenders = t.offenders
			row.RepeatOffenderRate = percent(t.offenders, t.eligible)
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b domain.DepartmentMetrics) int {
		return compareDepartments(a.Department, b.Department)
	})

	return domain.Report{
		Departments:   rows,
		NoSentData:    noSent,
		SkippedEvents: idx.skipped,
	}
}

// compareDepartments orders names case-insensitively, using the exact
// spelling only to separate names that differ by case.
func compareDepartments(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Timeline returns the canonical actions recorded for one employee ordered
// by timestamp. Events without a timestamp keep their input order and come
// last.
func Timeline(events []domain.Event, employeeID string) []domain.TimelineEntry {
	out := make([]domain.TimelineEntry, 0)
	for _, ev := range events {
		if ev.EmployeeID != employeeID || !ev.Action.Valid() {
			continue
		}
		out = append(out, domain.TimelineEntry{
			CampaignID: ev.CampaignID,
			Platform:   ev.Platform,
			Action:     ev.Action,
			Timestamp:  ev.Timestamp,
			Orderable:  !ev.Timestamp.IsZero(),
		})
	}
	slices.SortStableFunc(out, func(a, b domain.TimelineEntry) int {
		return compareTime(a.Timestamp, b.Timestamp)
	})
	return out
}
