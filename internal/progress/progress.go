// Package progress implements per-file-group progress tokens for
// long-running components: a token opens per file-group, increments per
// file, and closes when its group completes. Reporter is an explicit
// interface rather than a context value so the Ingestor doesn't need a
// context-carried handle to report progress.
package progress

import (
	"fmt"

	"github.com/robustls/robustls/internal/logging"
)

// Token tracks one open group's progress.
type Token interface {
	Increment()
	Close()
}

// Reporter opens tokens for named groups.
type Reporter interface {
	Begin(group string, total int) Token
}

// LogReporter reports progress via structured info-level log lines.
type LogReporter struct {
	Logger logging.Logger
}

// Begin opens a token that logs its group's start and completion.
func (r LogReporter) Begin(group string, total int) Token {
	logging.Info(r.Logger, fmt.Sprintf("ingest: starting %s", group), logging.Fields{"total": total})
	return &logToken{logger: r.Logger, group: group, total: total}
}

type logToken struct {
	logger logging.Logger
	group  string
	total  int
	done   int
}

func (t *logToken) Increment() {
	t.done++
}

func (t *logToken) Close() {
	logging.Info(t.logger, fmt.Sprintf("ingest: finished %s", t.group), logging.Fields{"done": t.done, "total": t.total})
}

// Noop discards all progress, useful in tests.
type Noop struct{}

func (Noop) Begin(string, int) Token { return noopToken{} }

type noopToken struct{}

func (noopToken) Increment() {}
func (noopToken) Close()     {}
