package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/dis68k/internal/detector"
	"github.com/retroenv/dis68k/internal/hunk"
	"github.com/retroenv/dis68k/internal/hunk/hunktest"
	"github.com/retroenv/retrogolib/assert"
)

func TestRead(t *testing.T) {
	t.Run("read file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x4E, 0x75})

		data, err := New().Read(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x4E, 0x75}, data)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Read("/nonexistent/file.exe")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestLoadFromBytes(t *testing.T) {
	t.Run("load hunk executable", func(t *testing.T) {
		data := hunktest.New(4).Code([]byte{0x4E, 0x71, 0x4E, 0x75}).End().Bytes()

		file, err := New().LoadFromBytes(data, "test.exe", detector.Hunk)
		assert.NoError(t, err)
		assert.Len(t, file.Hunks, 1)
		assert.Equal(t, hunk.Code, file.Hunks[0].Type)
	})

	t.Run("load raw binary", func(t *testing.T) {
		data := []byte{0x4E, 0x71, 0x4E, 0x75}

		file, err := New().LoadFromBytes(data, "/tmp/boot.bin", detector.Raw)
		assert.NoError(t, err)
		assert.Len(t, file.Hunks, 1)
		assert.Equal(t, "boot.bin", file.Hunks[0].Name)
		assert.Equal(t, data, file.Hunks[0].Data)
	})

	t.Run("error on invalid hunk header", func(t *testing.T) {
		_, err := New().LoadFromBytes(make([]byte, 16), "test.exe", detector.Hunk)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, hunk.ErrBadMagic))
	})

	t.Run("error on empty raw binary", func(t *testing.T) {
		_, err := New().LoadFromBytes(nil, "empty.bin", detector.Raw)
		assert.Error(t, err)
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.bin")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
