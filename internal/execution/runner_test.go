package execution

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"dpltest/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInterpreter prints <fixture>.out to stdout, <fixture>.err to stderr
// and exits with the status in <fixture>.code.
const fakeInterpreter = `#!/bin/sh
if [ -f "$1.out" ]; then cat "$1.out"; fi
if [ -f "$1.err" ]; then cat "$1.err" >&2; fi
if [ -f "$1.code" ]; then exit "$(cat "$1.code")"; fi
exit 0
`

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0755))
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New()
	cfg.Interpreter = writeScript(t, dir, "dplang", fakeInterpreter)
	runner := NewRunner(cfg)

	t.Run("captures stdout lines", func(t *testing.T) {
		fixture := filepath.Join(dir, "ok.dpl")
		writeFile(t, fixture, "")
		writeFile(t, fixture+".out", "2\nhello world\n\n")

		out, err := runner.Run(context.Background(), fixture)
		require.NoError(t, err)
		assert.Equal(t, []string{"2", "hello world", ""}, out.Lines)
		assert.Equal(t, 0, out.ExitCode)
		assert.Empty(t, out.Stderr)
	})

	t.Run("form feed in output ends a line", func(t *testing.T) {
		fixture := filepath.Join(dir, "ff.dpl")
		writeFile(t, fixture, "")
		writeFile(t, fixture+".out", "1\f2\r\n3\n")

		out, err := runner.Run(context.Background(), fixture)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, out.Lines)
	})

	t.Run("non-zero exit is not an error", func(t *testing.T) {
		fixture := filepath.Join(dir, "crash.dpl")
		writeFile(t, fixture, "")
		writeFile(t, fixture+".out", "1\n")
		writeFile(t, fixture+".err", "runtime error: boom\n")
		writeFile(t, fixture+".code", "70")

		out, err := runner.Run(context.Background(), fixture)
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, out.Lines)
		assert.Equal(t, 70, out.ExitCode)
		assert.Equal(t, "runtime error: boom\n", out.Stderr)
	})

	t.Run("no output", func(t *testing.T) {
		fixture := filepath.Join(dir, "silent.dpl")
		writeFile(t, fixture, "")

		out, err := runner.Run(context.Background(), fixture)
		require.NoError(t, err)
		assert.Empty(t, out.Lines)
	})

	t.Run("missing interpreter is an error", func(t *testing.T) {
		missing := config.New()
		missing.Interpreter = filepath.Join(dir, "does-not-exist")

		_, err := NewRunner(missing).Run(context.Background(), filepath.Join(dir, "ok.dpl"))
		assert.Error(t, err)
	})

	t.Run("cancelled context is an error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := runner.Run(ctx, filepath.Join(dir, "ok.dpl"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRunner_Timeout(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New()
	cfg.Interpreter = writeScript(t, dir, "slow", "#!/bin/sh\necho started\nexec sleep 10\n")
	cfg.Timeout = 200 * time.Millisecond

	fixture := filepath.Join(dir, "slow.dpl")
	writeFile(t, fixture, "")

	start := time.Now()
	out, err := NewRunner(cfg).Run(context.Background(), fixture)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, []string{"started"}, out.Lines)
	assert.Equal(t, -1, out.ExitCode)
	assert.Contains(t, out.Stderr, "killed after")
}
