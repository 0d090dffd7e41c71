package ingest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	want := []byte{0x1A, 0x45, 0xDF, 0xA3, 0x01, 0x02}
	path := filepath.Join(t.TempDir(), "in.mkv")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("read %v, want %v", got, want)
	}
}

func TestReadFileMissing(t *testing.T) {
	t.Parallel()

	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.mkv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	want := bytes.Repeat([]byte{0xAB}, 4096)
	got, err := ReadAll(bytes.NewReader(want))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("read %d bytes, want %d", len(got), len(want))
	}
}

func TestExtractStreamKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"live/camera1", "camera1"},
		{"/live/camera1", "camera1"},
		{"feed", "feed"},
		{"/feed", "feed"},
		{"", "default"},
		{"/", "default"},
		{"live/", "default"},
	}
	for _, tt := range tests {
		if got := extractStreamKey(tt.in); got != tt.want {
			t.Errorf("extractStreamKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
