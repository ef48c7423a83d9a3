package services

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain name", in: "resume.pdf", want: "resume.pdf"},
		{name: "whitespace replaced", in: "my resume final.pdf", want: "my_resume_final.pdf"},
		{name: "tabs and repeats collapsed", in: "a \t b.pdf", want: "a_b.pdf"},
		{name: "path traversal stripped", in: "../../etc/passwd", want: "passwd"},
		{name: "windows separators stripped", in: `..\..\boot.ini`, want: "boot.ini"},
		{name: "empty name", in: "", want: "upload"},
		{name: "dot dot only", in: "..", want: "upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)
	require.NoError(t, storage.EnsureUploadDir())

	storedName, filePath, written, err := storage.SaveFile("my resume.pdf", strings.NewReader("resume bytes"))
	require.NoError(t, err)

	assert.Equal(t, int64(len("resume bytes")), written)
	assert.True(t, strings.HasSuffix(storedName, "_my_resume.pdf"), "stored name %q should end with sanitized original", storedName)

	data, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "resume bytes", string(data))
}

func TestSaveFileUniqueNames(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)
	require.NoError(t, storage.EnsureUploadDir())

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		storedName, _, _, err := storage.SaveFile("resume.pdf", strings.NewReader("x"))
		require.NoError(t, err)
		assert.False(t, seen[storedName], "stored name %q repeated", storedName)
		seen[storedName] = true
	}
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)
	require.NoError(t, storage.EnsureUploadDir())

	storedName, filePath, _, err := storage.SaveFile("resume.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(storedName))
	_, err = os.Stat(filePath)
	assert.True(t, os.IsNotExist(err))
}
