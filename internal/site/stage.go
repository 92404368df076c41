package site

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// StageName identifies one step of the generation pipeline.
type StageName string

const (
	StageCollect  StageName = "collect"
	StageIndexing StageName = "indexing"
	StageTheme    StageName = "theme"
	StagePosts    StageName = "posts"
	StagePages    StageName = "pages"
	StageArchives StageName = "archives"
	StageTags     StageName = "tags"
	StageFront    StageName = "front"
	StageFeeds    StageName = "feeds"
	StageAssets   StageName = "assets"
)

// StageKind classifies a stage failure. Fatal errors abort the run;
// warnings are counted and the pipeline moves on.
type StageKind int

const (
	StageFatal StageKind = iota
	StageWarning
)

// StageError wraps a stage failure with its origin and severity.
type StageError struct {
	Kind  StageKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func fatal(stage StageName, err error) error {
	return &StageError{Kind: StageFatal, Stage: stage, Err: err}
}

func warning(stage StageName, err error) error {
	return &StageError{Kind: StageWarning, Stage: stage, Err: err}
}

// stage couples a pipeline step with its enable switch.
type stage struct {
	name    StageName
	enabled func() bool
	run     func() error
}

// runStages executes the pipeline in order, timing each stage into the
// report. Disabled stages are recorded as skipped. A StageWarning is
// logged and the pipeline continues; anything else stops the run.
func (g *Generator) runStages(stages []stage) error {
	for _, st := range stages {
		if st.enabled != nil && !st.enabled() {
			slog.Debug("stage disabled", "stage", st.name)
			g.report.addStage(StageResult{Name: st.name, Skipped: true})
			continue
		}
		start := time.Now()
		err := st.run()
		res := StageResult{Name: st.name, DurationMS: time.Since(start).Milliseconds()}
		if err != nil {
			res.Error = err.Error()
		}
		g.report.addStage(res)

		if err == nil {
			slog.Debug("stage done", "stage", st.name, "ms", res.DurationMS)
			continue
		}
		var se *StageError
		if errors.As(err, &se) {
			if se.Kind == StageWarning {
				g.warn(se.Err.Error(), "stage", se.Stage)
				continue
			}
			return err
		}
		return fatal(st.name, err)
	}
	return nil
}
