// pkg/api/alignment_v1.go
package api

// AlignmentV1 is the stable JSON/JSONL schema for one aligned pair.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
//
// Top and Bottom carry the aligned rows; a space marks a gap.
type AlignmentV1 struct {
	ID         string  `json:"id"`
	Top        string  `json:"top"`
	Bottom     string  `json:"bottom"`
	Score      int     `json:"score"`
	Length     int     `json:"length"`
	Matches    int     `json:"matches"`
	Mismatches int     `json:"mismatches"`
	Gaps       int     `json:"gaps"`
	Identity   float64 `json:"identity"`
}

// AlignRequestV1 is the body of POST /v1/align. Scoring fields left out
// fall back to the server's configured scheme.
type AlignRequestV1 struct {
	ID       string `json:"id,omitempty"`
	Top      string `json:"top"`
	Bottom   string `json:"bottom"`
	Match    *int   `json:"match,omitempty"`
	Mismatch *int   `json:"mismatch,omitempty"`
	Gap      *int   `json:"gap,omitempty"`
}

// ErrorV1 is the body of every non-2xx response from the service.
type ErrorV1 struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}
