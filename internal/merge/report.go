package merge

import "github.com/google/uuid"

// Conflict records one scalar property disagreement that was resolved in
// favor of the accumulator. Conflicts are review material, not errors.
type Conflict struct {
	Ply     int    `json:"ply"`
	Node    string `json:"node"` // move string like "W[dp]", or "root"
	ID      string `json:"id"`
	Kept    string `json:"kept"`
	Dropped string `json:"dropped"`
	Source  string `json:"source,omitempty"`
}

// BranchNote records one divergent line appended as a new variation.
type BranchNote struct {
	Ply    int    `json:"ply"`
	Head   string `json:"head"` // first move of the new variation
	Source string `json:"source,omitempty"`
}

// Report summarizes what one merge run did. RunID correlates the report
// with log output when several merges run in one process.
type Report struct {
	RunID     string       `json:"run_id"`
	Inputs    int          `json:"inputs"`
	Conflicts []Conflict   `json:"conflicts,omitempty"`
	Branches  []BranchNote `json:"branches,omitempty"`
}

func newReport() *Report {
	return &Report{RunID: uuid.NewString()}
}
