// Package logstore provides the line-oriented stream view of the demo
// application logs, for tailing and replay. Structured log queries go through
// the repository instead.
package logstore

import "time"

type Writer interface {
	Write(line string) error
}

type TailOptions struct {
	Start time.Time
}

type QueryOptions struct {
	Start time.Time
	End   time.Time
	Limit uint32
}

type LogStore interface {
	Query(options QueryOptions, writer Writer, stopCh <-chan struct{}) error
	Tail(options TailOptions, writer Writer, stopCh <-chan struct{}) error
	Push(line string, t time.Time) error
}
