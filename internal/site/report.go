package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ReportFileName is written into the output root after every run.
const ReportFileName = "build-report.json"

// StageResult records one pipeline stage for the report.
type StageResult struct {
	Name       StageName `json:"name"`
	DurationMS int64     `json:"duration_ms"`
	Skipped    bool      `json:"skipped,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Report summarizes one generation run.
type Report struct {
	RunID    string    `json:"run_id"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`

	Posts  int `json:"posts"`
	Pages  int `json:"pages"`
	Tags   int `json:"tags"`
	Months int `json:"months"`
	Drafts int `json:"drafts_skipped"`

	FilesWritten int `json:"files_written"`
	Warnings     int `json:"warnings"`

	Stages  []StageResult `json:"stages"`
	Outcome string        `json:"outcome"`
	Error   string        `json:"error,omitempty"`
}

func newReport(start time.Time) *Report {
	return &Report{
		RunID:   uuid.NewString(),
		Started: start,
		Outcome: "ok",
	}
}

func (r *Report) addStage(res StageResult) {
	r.Stages = append(r.Stages, res)
}

func (r *Report) finish(err error, now time.Time) {
	r.Finished = now
	if err != nil {
		r.Outcome = "failed"
		r.Error = err.Error()
	}
}

// write persists the report into the output root, which may not exist
// yet when the run failed early. The site itself is already on disk at
// this point, so a failure here only warns.
func (r *Report) write(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(filepath.Join(outDir, ReportFileName), b, 0o644)
}
