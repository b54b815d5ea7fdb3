package model

// CandidateEventTypes is the fixed label set the zero-shot classifier ranks.
var CandidateEventTypes = []string{"wedding", "corporate event", "birthday", "conference"}

// ExtractedRequest is the structured view of one inquiry text. Fields the
// patterns could not find stay nil; Language is always populated. Degraded
// lists the pipeline steps that failed against an external service, so
// callers can surface a partial result.
type ExtractedRequest struct {
	Date         *string  `json:"date,omitempty"`
	Headcount    *int     `json:"headcount,omitempty"`
	EventType    *string  `json:"eventType,omitempty"`
	ContactEmail *string  `json:"contactEmail,omitempty"`
	ContactPhone *string  `json:"contactPhone,omitempty"`
	ContactName  *string  `json:"contactName,omitempty"`
	Language     string   `json:"language"`
	Degraded     []string `json:"degraded,omitempty"`
}

// Missing lists the fields an availability check needs but extraction did not
// find.
func (r ExtractedRequest) Missing() []string {
	missing := make([]string, 0, 3)

	if r.Date == nil {
		missing = append(missing, "date")
	}

	if r.Headcount == nil {
		missing = append(missing, "headcount")
	}

	if r.EventType == nil {
		missing = append(missing, "event type")
	}

	return missing
}

// Complete reports whether the request carries everything an availability
// check needs.
func (r ExtractedRequest) Complete() bool {
	return len(r.Missing()) == 0
}
