package vfs

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Dump writes every stored file to w in the dump format.
func (s *Store) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	files := s.List()
	if err := writeInt(bw, len(files)); err != nil {
		return err
	}
	for _, f := range files {
		sl := s.slots[f.Slot]
		if err := writeBytes(bw, sl.name); err != nil {
			return err
		}
		if err := writeBytes(bw, sl.content); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Restore replaces the store's contents with the files decoded from r.
// On error the store is left unchanged.
func (s *Store) Restore(r io.Reader) error {
	br := bufio.NewReader(r)

	count, err := readInt(br)
	if err != nil {
		return fmt.Errorf("%w: file count: %w", ErrCorrupt, err)
	}
	if count < 0 || count > MaxFiles {
		return fmt.Errorf("%w: file count %d", ErrCorrupt, count)
	}

	next := New()
	for i := range count {
		name, err := readBytes(br, 1, MaxName-1)
		if err != nil {
			return fmt.Errorf("%w: file %d name: %w", ErrCorrupt, i, err)
		}
		content, err := readBytes(br, 0, MaxContent-1)
		if err != nil {
			return fmt.Errorf("%w: file %d content: %w", ErrCorrupt, i, err)
		}
		slot, err := next.Create(name)
		if err != nil {
			return fmt.Errorf("%w: file %d: %w", ErrCorrupt, i, err)
		}
		next.slots[slot].content = content
	}

	s.slots = next.slots
	return nil
}

// Save dumps the store to path. The dump is written to a temporary file in
// the same directory, flushed to stable storage and renamed over path.
func (s *Store) Save(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err := s.Dump(tmp); err != nil {
		return fmt.Errorf("write dump: %w", err)
	}
	if err := syncFile(tmp); err != nil {
		return fmt.Errorf("sync dump: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close dump: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename dump: %w", err)
	}
	committed = true
	return nil
}

// Load restores the store from the dump at path. A missing file yields an
// error matching fs.ErrNotExist.
func (s *Store) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.Restore(f)
}

func writeInt(w io.Writer, n int) error {
	return binary.Write(w, binary.LittleEndian, int32(n))
}

func writeBytes(w *bufio.Writer, s string) error {
	if err := writeInt(w, len(s)); err != nil {
		return err
	}
	_, err := w.WriteString(s)
	return err
}

func readInt(r io.Reader) (int, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return 0, err
	}
	return int(n), nil
}

var errLength = errors.New("length out of range")

func readBytes(r io.Reader, minLen, maxLen int) (string, error) {
	n, err := readInt(r)
	if err != nil {
		return "", err
	}
	if n < minLen || n > maxLen {
		return "", fmt.Errorf("%w: %d", errLength, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
