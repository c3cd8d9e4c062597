// Package logging configures the diagnostic logger shared by the programs.
// Every line goes to standard output behind a fixed prefix.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/gogpu/gg"
	"github.com/sirupsen/logrus"
)

// Prefix starts every diagnostic line.
const Prefix = "SK: "

// exit is replaced in tests.
var exit = os.Exit

// Formatter renders "SK: message key=value ..." lines.
type Formatter struct{}

// Format implements logrus.Formatter.
func (Formatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(Prefix)
	if e.Level <= logrus.WarnLevel {
		b.WriteString(e.Level.String())
		b.WriteString(": ")
	}
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		fmt.Fprint(&b, e.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// New returns a logger writing to w at the named level. An unknown level
// falls back to info.
func New(w io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(Formatter{})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	l.ExitFunc = exit
	return l
}

// Default returns a stdout logger at info level.
func Default() *logrus.Logger {
	return New(os.Stdout, "info")
}

// BridgeGG routes the graphics library's slog output through l until the
// returned func is called. The func silences gg again and closes the pipe
// logrus reads from.
func BridgeGG(l *logrus.Logger) (unbridge func()) {
	w := l.WriterLevel(logrus.DebugLevel)
	gg.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn})))
	return func() {
		gg.SetLogger(nil)
		_ = w.Close()
	}
}

// Die logs a fatal diagnostic and terminates the process with a non-zero
// status.
func Die(l logrus.FieldLogger, format string, args ...any) {
	l.Fatalf(format, args...)
}
