package analytics

import (
	"strings"
	"time"

	"phish-analytics/internal/core/domain"
)

// pair identifies one employee within one campaign. It is the unit of
// de-duplication for every count in the report.
type pair struct {
	employeeID string
	campaignID string
}

type pairSet map[pair]struct{}

func (s pairSet) add(p pair) { s[p] = struct{}{} }

func (s pairSet) has(p pair) bool {
	_, ok := s[p]
	return ok
}

// bucket holds the pairs observed for one department.
type bucket struct {
	sent      pairSet
	clicked   pairSet
	submitted pairSet
}

func newBucket() *bucket {
	return &bucket{sent: pairSet{}, clicked: pairSet{}, submitted: pairSet{}}
}

// sentOccurrence is one sent event in an employee's personal timeline. seq
// is the position of the event in the input and breaks timestamp ties.
type sentOccurrence struct {
	campaignID string
	at         time.Time
	seq        int
}

// index is the grouped view of one event snapshot. It is built once per
// report and never shared.
type index struct {
	buckets   map[string]*bucket
	failed    pairSet
	sent      map[string][]sentOccurrence
	directory map[string]string
	tags      map[string]string
	skipped   int
}

// indexable reports whether the event can take part in pair accounting.
func indexable(ev domain.Event) bool {
	return ev.EmployeeID != "" && ev.CampaignID != "" && ev.Action.Valid()
}

func buildIndex(events []domain.Event, employees []domain.Employee) *index {
	idx := &index{
		buckets:   make(map[string]*bucket),
		failed:    pairSet{},
		sent:      make(map[string][]sentOccurrence),
		directory: make(map[string]string, len(employees)),
		tags:      make(map[string]string),
	}
	for _, e := range employees {
		if d := strings.TrimSpace(e.Department); d != "" {
			idx.directory[e.ID] = d
		}
	}
	for _, ev := range events {
		if !indexable(ev) {
			continue
		}
		tag := strings.TrimSpace(ev.EmployeeDepartment)
		if _, seen := idx.tags[ev.EmployeeID]; tag != "" && !seen {
			idx.tags[ev.EmployeeID] = tag
		}
	}

	for _, e := range employees {
		idx.bucket(idx.employeeDepartment(e.ID))
	}

	for seq, ev := range events {
		if !indexable(ev) {
			idx.skipped++
			continue
		}
		b := idx.bucket(idx.eventDepartment(ev))
		p := pair{employeeID: ev.EmployeeID, campaignID: ev.CampaignID}
		switch ev.Action {
		case domain.ActionSent:
			b.sent.add(p)
			idx.sent[ev.EmployeeID] = append(idx.sent[ev.EmployeeID], sentOccurrence{
				campaignID: ev.CampaignID,
				at:         ev.Timestamp,
				seq:        seq,
			})
		case domain.ActionClicked:
			b.clicked.add(p)
			idx.failed.add(p)
		case domain.ActionSubmitted:
			b.submitted.add(p)
			idx.failed.add(p)
		}
	}

	if len(idx.buckets) == 0 {
		idx.bucket(domain.UnknownDepartment)
	}
	return idx
}

func (idx *index) bucket(dept string) *bucket {
	b, ok := idx.buckets[dept]
	if !ok {
		b = newBucket()
		idx.buckets[dept] = b
	}
	return b
}

// eventDepartment resolves the department of a single event: its own tag,
// then the directory, then UnknownDepartment.
func (idx *index) eventDepartment(ev domain.Event) string {
	if tag := strings.TrimSpace(ev.EmployeeDepartment); tag != "" {
		return tag
	}
	if d, ok := idx.directory[ev.EmployeeID]; ok {
		return d
	}
	return domain.UnknownDepartment
}

// employeeDepartment attributes an employee to one department for the
// repeat-offender metric, using the same precedence as eventDepartment with
// the first tag seen for that employee.
func (idx *index) employeeDepartment(employeeID string) string {
	if tag, ok := idx.tags[employeeID]; ok {
		return tag
	}
	if d, ok := idx.directory[employeeID]; ok {
		return d
	}
	return domain.UnknownDepartment
}

func (idx *index) totalSent() int {
	n := 0
	for _, b := range idx.buckets {
		n += len(b.sent)
	}
	return n
}
