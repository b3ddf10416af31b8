package fileprocessor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/dis68k/internal/hunk/hunktest"
	"github.com/retroenv/dis68k/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"game.exe", "game.s"},
		{"dir/tool", "dir/tool.s"},
		{"archive.tar.bin", "archive.tar.s"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateOutputFilename(tt.input))
		})
	}
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.exe", "b.exe", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{0}, 0600))
	}

	t.Run("single input", func(t *testing.T) {
		opts := &options.Program{Parameters: options.Parameters{Input: "game.exe"}}
		files, err := GetFilesToProcess(opts)
		assert.NoError(t, err)
		assert.Equal(t, []string{"game.exe"}, files)
	})

	t.Run("batch pattern", func(t *testing.T) {
		opts := &options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.exe")}}
		files, err := GetFilesToProcess(opts)
		assert.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.exe"), filepath.Join(dir, "b.exe")}, files)
	})

	t.Run("batch pattern without match", func(t *testing.T) {
		opts := &options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.lha")}}
		_, err := GetFilesToProcess(opts)
		assert.True(t, errors.Is(err, ErrNoFiles))
	})

	t.Run("malformed pattern", func(t *testing.T) {
		opts := &options.Program{Parameters: options.Parameters{Batch: "[-"}}
		_, err := GetFilesToProcess(opts)
		assert.Error(t, err)
	})
}

func TestProcessFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()

	input := filepath.Join(dir, "test.exe")
	data := hunktest.New(4).Code([]byte{0x4E, 0x71, 0x4E, 0x75}).End().Bytes()
	assert.NoError(t, os.WriteFile(input, data, 0600))

	t.Run("writes output file", func(t *testing.T) {
		output := GenerateOutputFilename(input)
		opts := options.Program{
			Parameters: options.Parameters{Input: input, Output: output},
			Flags:      options.Flags{Quiet: true},
		}

		assert.NoError(t, ProcessFile(context.Background(), logger, opts, options.NewListing()))

		content, err := os.ReadFile(output)
		assert.NoError(t, err)
		assert.Contains(t, string(content), "; Amiga Hunk Executable Disassembly")
		assert.Contains(t, string(content), "nop")
	})

	t.Run("output directory missing", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{Input: input, Output: filepath.Join(dir, "missing", "out.s")},
		}
		err := ProcessFile(context.Background(), logger, opts, options.NewListing())
		assert.ErrorContains(t, err, "creating writer")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		opts := options.Program{
			Parameters: options.Parameters{Input: input, Output: filepath.Join(dir, "cancelled.s")},
		}
		err := ProcessFile(ctx, logger, opts, options.NewListing())
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
