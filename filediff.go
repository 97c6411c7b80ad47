// Package filediff reports whether two files, or two open byte streams,
// have byte-identical contents.
//
// It is meant for tests that check produced output against an expected
// fixture, so its answer is a plain bool: a file that cannot be opened, a
// directory, or a stream that fails mid-read all count as "not equal",
// exactly like a genuine content mismatch.
//
//	if !filediff.Equal("testdata/want.bin", gotPath) {
//	    t.Errorf("%s does not match fixture", gotPath)
//	}
//
// Callers that need to tell a mismatch apart from an unreadable file can use
// Comparator.CompareFiles, which returns a Result and the underlying error.
//
// Comparison is a forward-only scan of both inputs in fixed-size chunks, so
// it works on arbitrary binary data and uses memory proportional to the
// chunk size rather than to the files.
package filediff

import "io"

var defaultComparator = New()

// Equal reports whether the files at pathA and pathB exist, are readable and
// are byte-identical. Any open or read failure yields false.
func Equal(pathA, pathB string) bool {
	return defaultComparator.EqualFiles(pathA, pathB)
}

// EqualReaders reports whether a and b yield byte-identical contents.
// Any read failure yields false. The readers are not closed.
func EqualReaders(a, b io.Reader) bool {
	return defaultComparator.EqualReaders(a, b)
}
