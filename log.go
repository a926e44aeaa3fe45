package artraster

import "io"

var (
	LogOutput io.Writer
	log       Logger = nilLog{}
)

type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SetLogger replaces the package logger. A nil l silences logging.
func SetLogger(l Logger) {
	if l == nil {
		l = nilLog{}
	}
	log = l
}

type nilLog struct{}

func (nilLog) Info(string, ...any)  {}
func (nilLog) Warn(string, ...any)  {}
func (nilLog) Error(string, ...any) {}
