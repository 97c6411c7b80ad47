// Package filedifftest provides testify-style assertions for checking
// produced files against expected fixtures.
//
// Example usage:
//
//	func TestRender(t *testing.T) {
//	    out := filepath.Join(t.TempDir(), "out.png")
//	    render(out)
//	    filedifftest.Equal(t, "testdata/want.png", out)
//	}
package filedifftest

import (
	"fmt"
	"io"

	"github.com/stretchr/testify/assert"

	"github.com/input-output-hk/catalyst-forge-libs/filediff"
)

// TestingT is the subset of *testing.T used by the assertions.
type TestingT = assert.TestingT

type tHelper interface {
	Helper()
}

// Comparator is used by all assertions in this package.
// Tests may replace it, e.g. to compare against an in-memory filesystem.
var Comparator = filediff.New()

// Equal asserts that the file at actual has the same bytes as the file at
// expected. Missing or unreadable files fail the assertion.
func Equal(t TestingT, expected, actual string, msgAndArgs ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	res, err := Comparator.CompareFiles(expected, actual)
	if res.IsEqual() {
		return true
	}
	return assert.Fail(t, failure(expected, actual, res, err), msgAndArgs...)
}

// NotEqual asserts that both files are readable and their contents differ.
// Unlike !Equal, an unreadable file fails this assertion too.
func NotEqual(t TestingT, expected, actual string, msgAndArgs ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	res, err := Comparator.CompareFiles(expected, actual)
	if res == filediff.Different {
		return true
	}
	return assert.Fail(t, failure(expected, actual, res, err), msgAndArgs...)
}

// EqualReaders asserts that both readers yield the same bytes.
func EqualReaders(t TestingT, expected, actual io.Reader, msgAndArgs ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	res, err := Comparator.CompareReaders(expected, actual)
	if res.IsEqual() {
		return true
	}
	return assert.Fail(t, failure("<expected reader>", "<actual reader>", res, err), msgAndArgs...)
}

func failure(expected, actual string, res filediff.Result, err error) string {
	msg := fmt.Sprintf("files are %s\n\texpected: %s\n\tactual  : %s", res, expected, actual)
	if err != nil {
		msg += fmt.Sprintf("\n\terror   : %v", err)
	}
	return msg
}
