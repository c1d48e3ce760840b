package gridworld

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWriterLogger(&out, &errOut, "grid", false)

	l.Debugf("hidden %d", 1)
	l.Infof("ready %s", "now")
	l.Warnf("cell %s taken", GridCoord{1, 2, 3})
	l.Errorf("boom")

	assert.Equal(t, "[grid] INFO: ready now\n", out.String())
	assert.Equal(t, "[grid] WARN: cell (1, 2, 3) taken\n[grid] ERROR: boom\n", errOut.String())

	l.SetDebug(true)
	l.Debugf("shown")
	assert.Contains(t, out.String(), "[grid] DEBUG: shown\n")
}

func TestDefaultLogger_NoPrefix(t *testing.T) {
	var out bytes.Buffer
	l := NewWriterLogger(&out, &out, "", true)

	l.Debugf("x=%v", 0.5)

	assert.Equal(t, "DEBUG: x=0.5\n", out.String())
}

func TestLoggerOrNop(t *testing.T) {
	l := loggerOrNop(nil)
	assert.NotNil(t, l)
	assert.False(t, l.DebugEnabled())

	d := NewWriterLogger(&bytes.Buffer{}, &bytes.Buffer{}, "", false)
	assert.Same(t, d, loggerOrNop(d))
}
