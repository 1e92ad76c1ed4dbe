package domain

import "time"

// DepartmentMetrics is one row of the department report. Pair counts are the
// raw denominators behind the rates so callers can render both.
type DepartmentMetrics struct {
	Department         string  `json:"department"`
	SentPairs          int     `json:"sentPairs"`
	ClickedPairs       int     `json:"clickedPairs"`
	SubmittedPairs     int     `json:"submittedPairs"`
	ClickRate          float64 `json:"clickRate"`
	SubmissionRate     float64 `json:"submissionRate"`
	RepeatOffenderRate float64 `json:"repeatOffenderRate"`
	RepeatEligible     int     `json:"repeatEligible"`
	RepeatOffenders    int     `json:"repeatOffenders"`
}

// Report is the ordered department report. NoSentData is set when the
// dataset held no sent events, in which case every rate is zero.
type Report struct {
	Departments   []DepartmentMetrics `json:"departments"`
	NoSentData    bool                `json:"noSentData"`
	SkippedEvents int                 `json:"skippedEvents"`
	GeneratedAt   time.Time           `json:"generatedAt"`
}

// ByDepartment indexes the rows by department name.
func (r Report) ByDepartment() map[string]DepartmentMetrics {
	out := make(map[string]DepartmentMetrics, len(r.Departments))
	for _, d := range r.Departments {
		out[d.Department] = d
	}
	return out
}

// TimelineEntry is one action in an employee's drill-down timeline.
// Orderable is false when the event carried no usable timestamp; such
// entries are listed after all timestamped ones.
type TimelineEntry struct {
	CampaignID string    `json:"campaignId"`
	Platform   Platform  `json:"platform"`
	Action     Action    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
	Orderable  bool      `json:"orderable"`
}
