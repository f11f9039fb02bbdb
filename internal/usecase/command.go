package usecase

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// Command executes one request. It never returns a Go error: every outcome,
// including unexpected failures, is reported through the response code.
type Command[Req any, Resp any] interface {
	Execute(ctx context.Context, req *Req) *Resp
}

// orDiscard returns log, or a logger that drops everything when log is nil.
func orDiscard(log *logrus.Logger) *logrus.Logger {
	if log != nil {
		return log
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}

func operation(adding bool) string {
	if adding {
		return "creation"
	}
	return "update"
}
