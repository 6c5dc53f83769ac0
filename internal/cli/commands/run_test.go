package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"dpltest/internal/cli"
	"dpltest/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// echoInterpreter prints every expected value except those marked "wrong",
// for which it prints "nope", and stops at a line containing "crash".
const echoInterpreter = `#!/bin/sh
while IFS= read -r line || [ -n "$line" ]; do
  case "$line" in
    *crash*) exit 70 ;;
    *"// expect: "*)
      value="${line#*// expect: }"
      case "$line" in
        *wrong*) echo "nope" ;;
        *) printf '%s\n' "$value" ;;
      esac
      ;;
  esac
done < "$1"
`

func newRoot(t *testing.T) (*cobra.Command, *config.Config, *bytes.Buffer, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	project := t.TempDir()
	interpreter := filepath.Join(project, "dplang")
	require.NoError(t, os.WriteFile(interpreter, []byte(echoInterpreter), 0755))

	cfg := config.New()
	cfg.ProjectPath = project
	cfg.Interpreter = interpreter

	var flags cli.Flags
	root := &cobra.Command{Use: "dpltest", SilenceUsage: true, SilenceErrors: true}
	NewCommands(cfg).Register(root, &flags, cfg)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, cfg, &out, project
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunCommand(t *testing.T) {
	t.Run("reports every fixture", func(t *testing.T) {
		root, _, out, project := newRoot(t)
		dir := filepath.Join(project, "fixtures")
		path := writeFixture(t, dir, "math.dpl", "// [TEST] addition\nprint 1 + 1; // expect: 2\nprint 2 + 2; // expect: 5 wrong\n")

		root.SetArgs([]string{"run", dir})
		require.NoError(t, root.Execute())

		assert.Equal(t, "=== "+path+"\n  === addition\n   print 1 + 1;  [OK]\n   print 2 + 2;  [FAIL]\n", out.String())
	})

	t.Run("no fixtures prints nothing", func(t *testing.T) {
		root, _, out, project := newRoot(t)
		dir := filepath.Join(project, "empty")
		require.NoError(t, os.MkdirAll(dir, 0755))

		root.SetArgs([]string{"run", dir, "--summary", "--strict"})
		require.NoError(t, root.Execute())
		assert.Empty(t, out.String())
	})

	t.Run("crash truncates silently", func(t *testing.T) {
		root, _, out, project := newRoot(t)
		dir := filepath.Join(project, "fixtures")
		path := writeFixture(t, dir, "crash.dpl", "print 1; // expect: 1\ncrash();\nprint 2; // expect: 2\n")

		root.SetArgs([]string{"run", dir})
		require.NoError(t, root.Execute())
		assert.Equal(t, "=== "+path+"\n  === \n   print 1;  [OK]\n", out.String())
	})

	t.Run("warn mismatch", func(t *testing.T) {
		root, _, out, project := newRoot(t)
		dir := filepath.Join(project, "fixtures")
		writeFixture(t, dir, "crash.dpl", "print 1; // expect: 1\ncrash();\nprint 2; // expect: 2\n")

		root.SetArgs([]string{"run", dir, "--warn-mismatch"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "has 2 test case(s) but produced 1 output line(s)")
	})

	t.Run("strict fails on a failing statement", func(t *testing.T) {
		root, _, _, project := newRoot(t)
		dir := filepath.Join(project, "fixtures")
		writeFixture(t, dir, "bad.dpl", "print 1; // expect: 1 wrong\n")

		root.SetArgs([]string{"run", dir, "--strict"})
		assert.ErrorIs(t, root.Execute(), ErrFailures)
	})

	t.Run("filter limits fixtures", func(t *testing.T) {
		root, _, out, project := newRoot(t)
		dir := filepath.Join(project, "fixtures")
		writeFixture(t, dir, "strings.dpl", "a // expect: 1\n")
		keep := writeFixture(t, dir, "numbers.dpl", "b // expect: 2\n")

		root.SetArgs([]string{"run", dir, "--filter", "numbers"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "=== "+keep+"\n  === \n   b  [OK]\n", out.String())
	})

	t.Run("save writes failures", func(t *testing.T) {
		root, cfg, _, project := newRoot(t)
		dir := filepath.Join(project, "fixtures")
		path := writeFixture(t, dir, "bad.dpl", "// [TEST] t\nprint 1; // expect: 1 wrong\nprint 2; // expect: 2\n")

		root.SetArgs([]string{"run", dir, "--save"})
		require.NoError(t, root.Execute())

		output, err := NewCommands(cfg).Failures.storage.Load()
		require.NoError(t, err)
		assert.Equal(t, 1, output.Meta.FailedCases)
		assert.Equal(t, 1, output.Meta.PassedCases)
		require.Len(t, output.Details, 1)
		assert.Equal(t, path, output.Details[0].FixturePath)
		assert.Equal(t, "nope", output.Details[0].Actual)
		assert.Equal(t, "1 wrong", output.Details[0].Expected)
	})

	t.Run("missing interpreter is an error", func(t *testing.T) {
		root, cfg, _, project := newRoot(t)
		dir := filepath.Join(project, "fixtures")
		writeFixture(t, dir, "a.dpl", "a // expect: 1\n")

		root.SetArgs([]string{"run", dir, "--interpreter", filepath.Join(project, "nope")})
		assert.Error(t, root.Execute())
		assert.Equal(t, filepath.Join(project, "nope"), cfg.Interpreter)
	})
}

func TestListCommand(t *testing.T) {
	t.Run("lists fixtures with test cases", func(t *testing.T) {
		root, _, out, project := newRoot(t)
		dir := filepath.Join(project, "fixtures")
		writeFixture(t, dir, "a.dpl", "a // expect: 1\n")

		root.SetArgs([]string{"list", dir, "-c"})
		require.NoError(t, root.Execute())
		assert.Equal(t,
			"Found 1 fixture(s) with test cases:\n\n"+
				"└── fixtures/a.dpl\n"+
				"    └── (no description)\n"+
				"        └── a => 1\n",
			out.String())
	})

	t.Run("marks fixtures failed in the saved run", func(t *testing.T) {
		root, _, out, project := newRoot(t)
		dir := filepath.Join(project, "fixtures")
		writeFixture(t, dir, "bad.dpl", "print 1; // expect: 1 wrong\n")
		writeFixture(t, dir, "good.dpl", "print 1; // expect: 1\n")

		root.SetArgs([]string{"run", dir, "--save"})
		require.NoError(t, root.Execute())
		out.Reset()

		root.SetArgs([]string{"list", dir})
		require.NoError(t, root.Execute())
		assert.Equal(t, "Found 2 fixture(s):\n\n├── fixtures/bad.dpl [F]\n└── fixtures/good.dpl\n", out.String())
	})

	t.Run("no fixtures", func(t *testing.T) {
		root, _, out, project := newRoot(t)

		root.SetArgs([]string{"list", filepath.Join(project, "missing")})
		require.NoError(t, root.Execute())
		assert.Equal(t, "No fixtures found\n", out.String())
	})
}

func TestRunCommand_Summary(t *testing.T) {
	root, _, out, project := newRoot(t)
	dir := filepath.Join(project, "fixtures")
	writeFixture(t, dir, "bad.dpl", "print 1; // expect: 1 wrong\n")
	writeFixture(t, dir, "crash.dpl", "crash();\nprint 1; // expect: 1\n")

	root.SetArgs([]string{"run", dir, "--summary"})
	require.NoError(t, root.Execute())

	s := out.String()
	assert.Contains(t, s, "Fixture Run Statistics")
	assert.Contains(t, s, "│ Failed Fixtures                 │ 1                           │")
	assert.Contains(t, s, "│ Fixtures Without Output         │ 1                           │")
	assert.Contains(t, s, "└── "+filepath.Join(dir, "bad.dpl")+"\n    └── 1: print 1;\n")
}

func TestFailuresCommand_NoSavedRun(t *testing.T) {
	root, _, _, _ := newRoot(t)

	root.SetArgs([]string{"failures"})
	assert.Error(t, root.Execute())
}
