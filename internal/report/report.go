// Package report sends failed resolutions to an external error tracker.
package report

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

const flushTimeout = 5 * time.Second

// Reporter sends errors to an external sink.
type Reporter interface {
	Report(err error, tags map[string]string)
}

// Noop drops every report.
type Noop struct{}

func (Noop) Report(error, map[string]string) {}

// Sentry sends reports to Sentry.
type Sentry struct{}

// NewSentry initialises the Sentry client for dsn.
func NewSentry(dsn, env, release string) (*Sentry, error) {
	err := sentry.Init(sentry.ClientOptions{Dsn: dsn, Environment: env, Release: release})
	if err != nil {
		return nil, errors.Wrap(err, "init sentry")
	}
	return &Sentry{}, nil
}

// Report captures err with tags and waits for delivery.
func (*Sentry) Report(err error, tags map[string]string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		sentry.CaptureException(err)
	})
	sentry.Flush(flushTimeout)
}

// New returns a Sentry reporter when dsn is set and a Noop otherwise.
func New(dsn, env, release string) (Reporter, error) {
	if dsn == "" {
		return Noop{}, nil
	}
	return NewSentry(dsn, env, release)
}
