package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestDump_PrintsElementTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	src := `
name: demo
root:
  column:
    children:
      - label: {text: hi, key: a}
      - padding:
          inset: 4
          child:
            label: {text: there}
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "dump", path)
	if err != nil {
		t.Fatalf("dump: %v\n%s", err, out)
	}

	for _, want := range []string{"scene: demo", "Column", "Label key=a", "Padding", "Label"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Two-character label at 8px per glyph, 16px line height.
	if !strings.Contains(out, "[16x16") {
		t.Errorf("expected laid-out label size in output:\n%s", out)
	}
}

func TestDump_MissingFile(t *testing.T) {
	_, err := runCLI(t, "dump", filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("expected error for missing scene file")
	}
}

func TestBench_ReportsTimings(t *testing.T) {
	out, err := runCLI(t, "bench", "--children", "5", "--rounds", "3")
	if err != nil {
		t.Fatalf("bench: %v\n%s", err, out)
	}
	for _, want := range []string{"children:    5", "rounds:      3", "per round:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBench_RejectsNonPositiveRounds(t *testing.T) {
	_, err := runCLI(t, "bench", "--children", "5", "--rounds", "0")
	if err == nil {
		t.Error("expected error for zero rounds")
	}
}
