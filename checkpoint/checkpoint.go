/*
package checkpoint reads and writes plasma state snapshots as a flat
set of named 2D arrays.

The on-disk layout is little-endian binary: a magic number, the array
count, then for each array a length-prefixed name, the two dimensions,
and the float64 values in row-major order. Arrays are written in sorted
name order, so identical states produce identical files. Loading
requires an exact name and shape match; there is no schema evolution.
*/
package checkpoint

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	"gonum.org/v1/gonum/mat"
)

var end = binary.LittleEndian

const magic int64 = 0x30747377 // "wst0"

const (
	maxNameLen = 1 << 10
	// Far above the widest window any configuration can ask for; a
	// header dimension beyond this is corruption, not data.
	maxDim = 1 << 13
)

// CorruptStateError reports a checkpoint that cannot supply a required
// array. Reloading stops at the first corrupt array and returns no
// partial state.
type CorruptStateError struct {
	Name, Reason string
}

func (e *CorruptStateError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("checkpoint: %s", e.Reason)
	}
	return fmt.Sprintf("checkpoint: array %q %s", e.Name, e.Reason)
}

// State is the named-array set of one checkpoint.
type State map[string]*mat.Dense

// Get returns the named array after checking its shape.
func (s State) Get(name string, rows, cols int) (*mat.Dense, error) {
	m, ok := s[name]
	if !ok {
		return nil, &CorruptStateError{name, "is missing"}
	}
	r, c := m.Dims()
	if r != rows || c != cols {
		return nil, &CorruptStateError{name,
			fmt.Sprintf("has shape %dx%d, want %dx%d", r, c, rows, cols)}
	}
	return m, nil
}

// Write writes the state to w.
func Write(w io.Writer, s State) error {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	if err := binary.Write(w, end, magic); err != nil {
		return err
	}
	if err := binary.Write(w, end, int64(len(names))); err != nil {
		return err
	}

	for _, name := range names {
		m := s[name]
		rows, cols := m.Dims()

		if err := binary.Write(w, end, int64(len(name))); err != nil {
			return err
		}
		if _, err := w.Write([]byte(name)); err != nil {
			return err
		}
		if err := binary.Write(w, end, int64(rows)); err != nil {
			return err
		}
		if err := binary.Write(w, end, int64(cols)); err != nil {
			return err
		}
		for i := 0; i < rows; i++ {
			if err := binary.Write(w, end, m.RawRowView(i)); err != nil {
				return err
			}
		}
	}

	return nil
}

// Read reads a full state from r.
func Read(r io.Reader) (State, error) {
	var fileMagic, count int64
	if err := binary.Read(r, end, &fileMagic); err != nil {
		return nil, err
	}
	if fileMagic != magic {
		return nil, &CorruptStateError{"", "not a plasma state file"}
	}
	if err := binary.Read(r, end, &count); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, &CorruptStateError{"",
			fmt.Sprintf("negative array count %d", count)}
	}

	s := make(State, count)
	for i := int64(0); i < count; i++ {
		var nameLen int64
		if err := binary.Read(r, end, &nameLen); err != nil {
			return nil, err
		}
		if nameLen <= 0 || nameLen > maxNameLen {
			return nil, &CorruptStateError{"",
				fmt.Sprintf("invalid array name length %d", nameLen)}
		}
		buf := make([]byte, nameLen)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		name := string(buf)

		var rows, cols int64
		if err := binary.Read(r, end, &rows); err != nil {
			return nil, err
		}
		if err := binary.Read(r, end, &cols); err != nil {
			return nil, err
		}
		if rows < 1 || cols < 1 || rows > maxDim || cols > maxDim {
			return nil, &CorruptStateError{name,
				fmt.Sprintf("has invalid shape %dx%d", rows, cols)}
		}

		data := make([]float64, rows*cols)
		if err := binary.Read(r, end, data); err != nil {
			return nil, &CorruptStateError{name, "is truncated: " + err.Error()}
		}
		s[name] = mat.NewDense(int(rows), int(cols), data)
	}

	return s, nil
}

// Save writes the state to the named file.
func Save(path string, s State) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := Write(w, s); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads the state back from the named file.
func Load(path string) (State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(bufio.NewReader(f))
}
