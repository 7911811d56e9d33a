package site

import (
	"time"
)

// Outcome is the final classification of a build.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeWarning  Outcome = "warning"
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
)

// BuildReport aggregates what happened during a build. It is never written
// into the output tree, so report contents cannot break output
// idempotence.
type BuildReport struct {
	BuildID  string
	Started  time.Time
	Duration time.Duration

	Pages  int // rendered HTML documents
	Assets int // copied static files
	Held   int // entries excluded by publishing policy

	StageDurations  map[string]time.Duration
	StageErrorKinds map[string]string
	Warnings        []*StageError
	Errors          []*StageError

	// Manifest maps output-relative paths to content hashes; ManifestHash
	// summarizes the whole output tree.
	Manifest     map[string]string
	ManifestHash string
}

func newBuildReport(buildID string) *BuildReport {
	return &BuildReport{
		BuildID:         buildID,
		Started:         time.Now(),
		StageDurations:  map[string]time.Duration{},
		StageErrorKinds: map[string]string{},
	}
}

func (r *BuildReport) record(se *StageError) {
	r.StageErrorKinds[se.Stage] = string(se.Kind)
	if se.Kind == StageErrorWarning {
		r.Warnings = append(r.Warnings, se)
		return
	}
	r.Errors = append(r.Errors, se)
}

// Outcome classifies the finished build.
func (r *BuildReport) Outcome() Outcome {
	for _, e := range r.Errors {
		if e.Kind == StageErrorCanceled {
			return OutcomeCanceled
		}
	}
	if len(r.Errors) > 0 {
		return OutcomeFailed
	}
	if len(r.Warnings) > 0 {
		return OutcomeWarning
	}
	return OutcomeSuccess
}
