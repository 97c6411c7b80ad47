package filedifftest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/filediff"
)

// mockT records assertion failures instead of failing the real test.
type mockT struct {
	errors  []string
	helpers int
}

func (m *mockT) Errorf(format string, args ...interface{}) {
	m.errors = append(m.errors, fmt.Sprintf(format, args...))
}

func (m *mockT) Helper() {
	m.helpers++
}

func (m *mockT) failed() bool {
	return len(m.errors) > 0
}

func writeFixtures(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestEqual(t *testing.T) {
	dir := writeFixtures(t, map[string]string{
		"want.txt":  "rendered\n",
		"same.txt":  "rendered\n",
		"other.txt": "rendered!\n",
	})
	p := func(name string) string { return filepath.Join(dir, name) }

	t.Run("passes on identical files", func(t *testing.T) {
		mt := &mockT{}
		assert.True(t, Equal(mt, p("want.txt"), p("same.txt")))
		assert.False(t, mt.failed())
		assert.Positive(t, mt.helpers)
	})

	t.Run("fails on different files", func(t *testing.T) {
		mt := &mockT{}
		assert.False(t, Equal(mt, p("want.txt"), p("other.txt"), "fixture %s", "other"))
		require.True(t, mt.failed())
		assert.Contains(t, mt.errors[0], "files are different")
		assert.Contains(t, mt.errors[0], p("other.txt"))
		assert.Contains(t, mt.errors[0], "fixture other")
	})

	t.Run("fails on missing file with reason", func(t *testing.T) {
		mt := &mockT{}
		assert.False(t, Equal(mt, p("want.txt"), p("missing.txt")))
		require.True(t, mt.failed())
		assert.Contains(t, mt.errors[0], "files are inaccessible")
		assert.Contains(t, mt.errors[0], "filediff.stat")
	})
}

func TestNotEqual(t *testing.T) {
	dir := writeFixtures(t, map[string]string{
		"a.bin": "\x00\x01\x02",
		"b.bin": "\x00\x01\x03",
	})
	p := func(name string) string { return filepath.Join(dir, name) }

	tests := []struct {
		name       string
		a, b       string
		wantPassed bool
	}{
		{"different files pass", p("a.bin"), p("b.bin"), true},
		{"identical files fail", p("a.bin"), p("a.bin"), false},
		{"missing file fails", p("a.bin"), p("missing.bin"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt := &mockT{}
			assert.Equal(t, tt.wantPassed, NotEqual(mt, tt.a, tt.b))
			assert.Equal(t, !tt.wantPassed, mt.failed())
		})
	}
}

func TestEqualReaders(t *testing.T) {
	t.Run("passes on identical streams", func(t *testing.T) {
		mt := &mockT{}
		assert.True(t, EqualReaders(mt, strings.NewReader("abc"), iotest.OneByteReader(strings.NewReader("abc"))))
		assert.False(t, mt.failed())
	})

	t.Run("fails on read error", func(t *testing.T) {
		mt := &mockT{}
		boom := errors.New("boom")
		assert.False(t, EqualReaders(mt, strings.NewReader("abc"), iotest.ErrReader(boom)))
		require.True(t, mt.failed())
		assert.Contains(t, mt.errors[0], "<actual reader>")
		assert.Contains(t, mt.errors[0], "boom")
	})
}

func TestComparatorOverride(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "want", []byte("in memory"), 0o644))
	require.NoError(t, util.WriteFile(fs, "got", []byte("in memory"), 0o644))

	orig := Comparator
	t.Cleanup(func() { Comparator = orig })
	Comparator = filediff.New(filediff.WithFilesystem(fs))

	Equal(t, "want", "got")
}
