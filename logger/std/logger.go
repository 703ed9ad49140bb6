package std

import (
	"fmt"
	"io"

	"github.com/ezraisw/quill/logger"
)

type stdLogger struct {
	w     io.Writer
	debug bool
}

// NewLogger writes one line per call to w. Debug lines are dropped unless debug is set.
func NewLogger(w io.Writer, debug bool) logger.Logger {
	return &stdLogger{
		w:     w,
		debug: debug,
	}
}

func (l stdLogger) Info(args ...any) {
	l.println("INFO", args)
}

func (l stdLogger) Debug(args ...any) {
	if !l.debug {
		return
	}
	l.println("DEBUG", args)
}

func (l stdLogger) Error(args ...any) {
	l.println("ERROR", args)
}

func (l stdLogger) println(level string, args []any) {
	fmt.Fprintln(l.w, append([]any{level}, args...)...)
}
