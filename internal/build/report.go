package build

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Failure records one non-fatal problem encountered during a build.
type Failure struct {
	Project string
	Stage   string
	Err     error
}

func (f Failure) String() string {
	if f.Project == "" {
		return fmt.Sprintf("%s: %v", f.Stage, f.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", f.Project, f.Stage, f.Err)
}

// Report aggregates the outcome of one build run. It is safe for
// concurrent use; the asset pipeline records failures from its workers.
type Report struct {
	BuildID string

	mu       sync.Mutex
	projects int
	pages    int
	images   int
	failures []Failure
}

// NewReport creates a report with a fresh build ID.
func NewReport() *Report {
	return &Report{BuildID: uuid.NewString()}
}

// AddProject counts one successfully processed project.
func (r *Report) AddProject() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects++
}

// AddPage counts one written output file.
func (r *Report) AddPage() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages++
}

// AddImages counts n processed media items.
func (r *Report) AddImages(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images += n
}

// AddFailure records a non-fatal problem.
func (r *Report) AddFailure(project, stage string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, Failure{Project: project, Stage: stage, Err: err})
}

// Projects returns the number of processed projects.
func (r *Report) Projects() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.projects
}

// Pages returns the number of written output files.
func (r *Report) Pages() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pages
}

// Images returns the number of processed media items.
func (r *Report) Images() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.images
}

// Failures returns a copy of the recorded failures.
func (r *Report) Failures() []Failure {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Failure, len(r.failures))
	copy(out, r.failures)
	return out
}

// HasErrors reports whether any failure was recorded.
func (r *Report) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.failures) > 0
}
