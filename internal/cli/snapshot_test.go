package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixturePath = "../../examples/relationships/fixture.yaml"

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSnapshotToStdout(t *testing.T) {
	out, err := runRoot(t, "snapshot", "--fixture", fixturePath, "--seed", "1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	// Container plus the four root items.
	if n := strings.Count(out, "<rect"); n != 5 {
		t.Errorf("rects = %d, want 5\n%s", n, out)
	}
}

func TestSnapshotSelectionToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	_, err := runRoot(t, "snapshot",
		"--fixture", fixturePath,
		"--config", "../../examples/relationships/orbit.toml",
		"--select", "Person:1",
		"--width", "640", "--height", "480",
		"-o", path)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	if !strings.Contains(svg, `width="640"`) || strings.Count(svg, "<rect") != 4 {
		t.Errorf("unexpected svg:\n%s", svg)
	}
	if !strings.Contains(svg, "Charles") {
		t.Error("template text missing from snapshot")
	}
}

func TestSnapshotErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad selection", []string{"snapshot", "--fixture", fixturePath, "--select", "nope"}},
		{"missing fixture", []string{"snapshot", "--fixture", "does-not-exist.yaml"}},
		{"fixture and url", []string{"snapshot", "--fixture", fixturePath, "--url", "http://x"}},
		{"stray argument", []string{"snapshot", "extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runRoot(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestViewWatchRequiresFixture(t *testing.T) {
	if _, err := runRoot(t, "view", "--watch", "--url", "http://localhost/items"); err == nil {
		t.Error("expected error")
	}
}
