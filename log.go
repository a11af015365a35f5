package montgomery

import (
	"github.com/inconshreveable/log15"
)

// log is the package logger. It discards everything until a handler is
// installed with SetLogHandler.
var log = newLogger()

func newLogger() log15.Logger {
	l := log15.New("pkg", "montgomery")
	l.SetHandler(log15.DiscardHandler())
	return l
}

// SetLogHandler routes the package's log records to h. Passing nil silences
// the package again.
func SetLogHandler(h log15.Handler) {
	if h == nil {
		h = log15.DiscardHandler()
	}
	log.SetHandler(h)
}
