package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalFileStorage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	storage, err := NewLocalFileStorage(dir)
	if err != nil {
		t.Fatalf("new storage failed: %v", err)
	}

	t.Run("store keeps the extension and returns a serving path", func(t *testing.T) {
		reference, err := storage.Store(ctx, []byte("receipt bytes"), "Receipt.PDF")
		if err != nil {
			t.Fatalf("store failed: %v", err)
		}
		if !strings.HasPrefix(reference, "/uploads/") {
			t.Errorf("expected /uploads/ prefix, got %q", reference)
		}
		if !strings.HasSuffix(reference, ".pdf") {
			t.Errorf("expected lowercased extension, got %q", reference)
		}

		content, err := os.ReadFile(filepath.Join(dir, filepath.Base(reference)))
		if err != nil {
			t.Fatalf("stored file unreadable: %v", err)
		}
		if string(content) != "receipt bytes" {
			t.Errorf("unexpected content %q", content)
		}
	})

	t.Run("generated names never collide", func(t *testing.T) {
		first, err := storage.Store(ctx, []byte("a"), "same.png")
		if err != nil {
			t.Fatalf("store failed: %v", err)
		}
		second, err := storage.Store(ctx, []byte("b"), "same.png")
		if err != nil {
			t.Fatalf("store failed: %v", err)
		}
		if first == second {
			t.Errorf("expected distinct references, got %q twice", first)
		}
	})

	t.Run("delete removes the file and tolerates absence", func(t *testing.T) {
		reference, err := storage.Store(ctx, []byte("x"), "gone.jpg")
		if err != nil {
			t.Fatalf("store failed: %v", err)
		}
		if err := storage.Delete(ctx, reference); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, filepath.Base(reference))); !os.IsNotExist(err) {
			t.Errorf("expected file removed, stat returned %v", err)
		}
		if err := storage.Delete(ctx, reference); err != nil {
			t.Errorf("second delete should be a no-op, got %v", err)
		}
	})
}
