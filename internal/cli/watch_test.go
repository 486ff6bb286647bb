package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/phanxgames/orbit"
)

func TestWatchFixtureReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	if err := os.WriteFile(path, []byte("root:\n  - {Id: 1, Type: A, Weight: 0.5}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	fx, err := orbit.NewFixtureFetcher(path)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan struct{}, 1)
	stop, err := watchFixture(ctx, fx, log.New(io.Discard), func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("watchFixture: %v", err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte("root:\n  - {Id: 2, Type: B, Weight: 0.5}\n  - {Id: 3, Type: B, Weight: 0.1}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after the fixture changed")
	}
	items, err := fx.Fetch(ctx, orbit.FetchRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || items[0].ID != "2" {
		t.Errorf("items = %+v", items)
	}
}
