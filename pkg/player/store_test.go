package player

import (
	"context"
	"path/filepath"
	"testing"
)

func TestStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playback.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	if _, ok, err := store.Load(ctx); err != nil {
		t.Fatalf("Load on empty store failed: %v", err)
	} else if ok {
		t.Fatal("expected no snapshot in a fresh store")
	}

	want := Snapshot{EpisodeID: "ep-baqarah-1", Position: 125.5}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, ok, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok || got != want {
		t.Errorf("Load = %+v (ok=%v), want %+v", got, ok, want)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playback.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Save(ctx, Snapshot{EpisodeID: "a", Position: 10}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, Snapshot{EpisodeID: "b", Position: 20}); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load = ok=%v err=%v", ok, err)
	}
	if got.EpisodeID != "b" || got.Position != 20 {
		t.Errorf("expected latest snapshot, got %+v", got)
	}
}

func TestStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playback.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Save(ctx, Snapshot{EpisodeID: "ep", Position: 42}); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load after reopen = ok=%v err=%v", ok, err)
	}
	if got.EpisodeID != "ep" {
		t.Errorf("snapshot lost across opens: %+v", got)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("expected error for empty path")
	}
}
