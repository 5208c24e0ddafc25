// Package io provides deferred adapters for file I/O operations. File
// handles are opened and closed by the bracket discipline: every run of a
// deferred file operation opens its own handle and is guaranteed to close
// it, whether the operation succeeds, fails, or panics.
package io

import (
	"bufio"
	"io"
	"os"

	"github.com/lguimbarda/min-effect/effect/core"
)

// WithFile creates a Deferred that opens the file at path, hands it to use,
// and always closes it afterwards. A Close error replaces use's outcome, per
// the bracket precedence rule.
func WithFile[A any](path string, use func(*os.File) core.Deferred[A]) core.Deferred[A] {
	return withOpenFile(path, os.O_RDONLY, 0, use)
}

func withOpenFile[A any](path string, flag int, perm os.FileMode, use func(*os.File) core.Deferred[A]) core.Deferred[A] {
	acquire := core.FromFunc(func() core.Result[*os.File] {
		file, err := os.OpenFile(path, flag, perm)
		if err != nil {
			return core.Err[*os.File](err)
		}
		return core.Ok(file)
	})

	release := func(file *os.File, _ core.Outcome) core.Deferred[core.Unit] {
		return core.FromFunc(func() core.Result[core.Unit] {
			if err := file.Close(); err != nil {
				return core.Err[core.Unit](err)
			}
			return core.Ok(core.Unit{})
		})
	}

	return core.BracketCase(acquire, use, release)
}

// ReadFile creates a Deferred that reads the whole file at path.
// Each run re-reads the file.
func ReadFile(path string) core.Deferred[[]byte] {
	return WithFile(path, func(file *os.File) core.Deferred[[]byte] {
		return core.FromFunc(func() core.Result[[]byte] {
			data, err := io.ReadAll(file)
			if err != nil {
				return core.Err[[]byte](err)
			}
			return core.Ok(data)
		})
	})
}

// ReadLines creates a Deferred that reads every line from the file at path.
// Lines are returned without the trailing newline character.
func ReadLines(path string) core.Deferred[[]string] {
	return WithFile(path, func(file *os.File) core.Deferred[[]string] {
		return LinesFrom(file)
	})
}

// LinesFrom creates a Deferred that reads lines from an io.Reader.
// This is useful for reading from stdin, network connections, or other
// readers. The reader is consumed by the run; rerunning only makes sense
// for readers that can be rewound by the caller.
func LinesFrom(r io.Reader) core.Deferred[[]string] {
	return core.FromFunc(func() core.Result[[]string] {
		var lines []string
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return core.Err[[]string](err)
		}
		return core.Ok(lines)
	})
}

// WriteFile creates a Deferred that writes data to the file at path,
// creating it if needed and truncating it otherwise.
func WriteFile(path string, data []byte, perm os.FileMode) core.Deferred[core.Unit] {
	return writeWith(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm, data)
}

// AppendFile creates a Deferred that appends data to the file at path,
// creating it if needed.
func AppendFile(path string, data []byte, perm os.FileMode) core.Deferred[core.Unit] {
	return writeWith(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, perm, data)
}

func writeWith(path string, flag int, perm os.FileMode, data []byte) core.Deferred[core.Unit] {
	return withOpenFile(path, flag, perm, func(file *os.File) core.Deferred[core.Unit] {
		return core.FromFunc(func() core.Result[core.Unit] {
			if _, err := file.Write(data); err != nil {
				return core.Err[core.Unit](err)
			}
			return core.Ok(core.Unit{})
		})
	})
}
