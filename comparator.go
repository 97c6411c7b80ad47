package filediff

import (
	"bytes"
	"errors"
	"io"
	"log/slog"

	"github.com/go-git/go-billy/v5"

	"github.com/input-output-hk/catalyst-forge-libs/filediff/internal/pool"
)

// Result is the detailed outcome of a comparison.
type Result int

const (
	// Inaccessible means a file could not be opened or a stream could not be read.
	Inaccessible Result = iota

	// Different means both inputs were read and their contents or lengths differ.
	Different

	// Identical means both inputs are byte-identical.
	Identical
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	switch r {
	case Identical:
		return "equal"
	case Different:
		return "different"
	case Inaccessible:
		return "inaccessible"
	default:
		return "unknown"
	}
}

// IsEqual collapses the result to the boolean reported by EqualFiles and
// EqualReaders: anything other than Identical is false.
func (r Result) IsEqual() bool {
	return r == Identical
}

// Comparator decides whether two byte streams or two files have identical
// contents. It reads both inputs in lockstep, one chunk at a time, so memory
// use is bounded by the chunk size regardless of file size.
//
// The zero value is usable and behaves like New() with no options.
//
// Thread Safety: a Comparator holds no per-call state and is safe for
// concurrent use, provided the configured filesystem is.
type Comparator struct {
	chunkSize   int
	fs          billy.Filesystem
	logger      *slog.Logger
	concurrency int
}

// New creates a comparator with the provided options.
//
// Example usage:
//
//	c := filediff.New(
//	    filediff.WithChunkSize(64*1024),
//	    filediff.WithLogger(slog.Default()),
//	)
//	ok := c.EqualFiles("testdata/expected.bin", outPath)
func New(opts ...Option) *Comparator {
	o := defaultOptions()
	applyOptions(o, opts)

	return &Comparator{
		chunkSize:   o.chunkSize,
		fs:          o.filesystem,
		logger:      o.logger,
		concurrency: o.concurrency,
	}
}

// EqualReaders reports whether a and b yield identical bytes.
// A read failure on either stream is reported as false. Neither reader is
// closed, and both are left positioned wherever the comparison stopped.
func (c *Comparator) EqualReaders(a, b io.Reader) bool {
	res, _ := c.CompareReaders(a, b)
	return res.IsEqual()
}

// EqualFiles reports whether the files at pathA and pathB exist, are
// readable and have identical contents. Every failure is reported as false.
func (c *Comparator) EqualFiles(pathA, pathB string) bool {
	res, _ := c.CompareFiles(pathA, pathB)
	return res.IsEqual()
}

// CompareReaders compares two streams and returns the detailed result.
// The error is non-nil only when the result is Inaccessible.
func (c *Comparator) CompareReaders(a, b io.Reader) (Result, error) {
	return c.compare(a, b, "", "")
}

// CompareFiles opens both paths and compares their contents.
// The error is non-nil only when the result is Inaccessible, and is always
// an *Error naming the path and step that failed.
func (c *Comparator) CompareFiles(pathA, pathB string) (Result, error) {
	fa, err := c.open(pathA)
	if err != nil {
		return Inaccessible, err
	}
	defer c.close(fa)

	fb, err := c.open(pathB)
	if err != nil {
		return Inaccessible, err
	}
	defer c.close(fb)

	return c.compare(fa, fb, pathA, pathB)
}

func (c *Comparator) compare(a, b io.Reader, nameA, nameB string) (Result, error) {
	if a == nil {
		return c.inaccessible(newError("read", nameA, ErrNilReader))
	}
	if b == nil {
		return c.inaccessible(newError("read", nameB, ErrNilReader))
	}

	chunk := c.chunkSize
	if chunk < 1 {
		chunk = DefaultChunkSize
	}
	bufA := pool.Get(chunk)
	defer pool.Put(bufA)
	bufB := pool.Get(chunk)
	defer pool.Put(bufB)

	var offset int64
	for {
		nA, err := readChunk(a, bufA)
		if err != nil {
			return c.inaccessible(newError("read", nameA, err))
		}
		nB, err := readChunk(b, bufB)
		if err != nil {
			return c.inaccessible(newError("read", nameB, err))
		}

		if nA != nB {
			c.debug("length mismatch", "a", nameA, "b", nameB, "offset", offset+int64(min(nA, nB)))
			return Different, nil
		}
		if nA == 0 {
			return Identical, nil
		}
		if !bytes.Equal(bufA[:nA], bufB[:nB]) {
			c.debug("content mismatch", "a", nameA, "b", nameB, "chunk_offset", offset)
			return Different, nil
		}
		// A short chunk means both streams have ended; reading past EOF
		// is not required to succeed.
		if nA < len(bufA) {
			return Identical, nil
		}
		offset += int64(nA)
	}
}

// readChunk fills buf as far as the stream allows. Only a stream that has
// ended returns fewer than len(buf) bytes, so short reads from pipes or
// network-backed files never look like a length difference.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return n, nil
	}
	return n, err
}

//nolint:ireturn // billy.Filesystem is an interface; the backend is pluggable.
func (c *Comparator) filesystem() billy.Filesystem {
	if c.fs == nil {
		return NewNativeFS()
	}
	return c.fs
}

func (c *Comparator) open(path string) (billy.File, error) {
	fs := c.filesystem()
	info, err := fs.Stat(path)
	if err != nil {
		c.debug("stat failed", "path", path, "error", err)
		return nil, newError("stat", path, err)
	}
	if info.IsDir() {
		c.debug("path is a directory", "path", path)
		return nil, newError("stat", path, ErrIsDirectory)
	}

	f, err := fs.Open(path)
	if err != nil {
		c.debug("open failed", "path", path, "error", err)
		return nil, newError("open", path, err)
	}
	return f, nil
}

func (c *Comparator) close(f billy.File) {
	if err := f.Close(); err != nil {
		c.debug("close failed", "path", f.Name(), "error", err)
	}
}

func (c *Comparator) inaccessible(err *Error) (Result, error) {
	c.debug("read failed", "op", err.Op, "path", err.Path, "error", err.Err)
	return Inaccessible, err
}

func (c *Comparator) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
