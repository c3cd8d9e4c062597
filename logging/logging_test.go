package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesArePrefixed(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug")

	l.WithField("device", 2).WithField("api", "gles").Info("selected device")
	l.Warn("software device")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Equal(t, "SK: selected device api=gles device=2", string(lines[0]))
	assert.Equal(t, "SK: warning: software device", string(lines[1]))
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	l := New(&bytes.Buffer{}, "loud")
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestDieExitsNonZero(t *testing.T) {
	code := -1
	saved := exit
	exit = func(c int) { code = c }
	defer func() { exit = saved }()

	var buf bytes.Buffer
	l := New(&buf, "info")
	Die(l, "failed to create %s", "rt.png")

	assert.Equal(t, 1, code)
	assert.Equal(t, "SK: fatal: failed to create rt.png\n", buf.String())
}

func TestDieWithWrappedError(t *testing.T) {
	saved := exit
	exit = func(int) {}
	defer func() { exit = saved }()

	var buf bytes.Buffer
	Die(New(&buf, "info"), "%v", errors.New("no EGL platform device support"))
	assert.Contains(t, buf.String(), "no EGL platform device support")
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestBridgeGGForwardsUntilUnbridged(t *testing.T) {
	var out lockedBuffer
	unbridge := BridgeGG(New(&out, "debug"))

	gg.Logger().Warn("cpu fallback")
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "cpu fallback")
	}, time.Second, 10*time.Millisecond)
	assert.True(t, strings.HasPrefix(out.String(), "SK: "))

	unbridge()
	assert.False(t, gg.Logger().Enabled(context.Background(), slog.LevelError))
}

func TestDefaultIsInfo(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, Default().GetLevel())
	assert.IsType(t, Formatter{}, Default().Formatter)
}
