// Package maskfile reads and writes binary mask files: flat sequences
// of 8-byte little-endian words as produced by the mask-search tools.
package maskfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Read decodes every 8-byte little-endian word from r. A trailing
// partial word is an error.
func Read(r io.Reader) ([]uint64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("maskfile: read: %w", err)
	}
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("maskfile: %d trailing bytes do not form an 8-byte word", len(data)%8)
	}

	masks := make([]uint64, 0, len(data)/8)
	for i := 0; i+8 <= len(data); i += 8 {
		masks = append(masks, binary.LittleEndian.Uint64(data[i:]))
	}
	return masks, nil
}

// ReadFile reads a mask file from disk.
func ReadFile(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maskfile: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Write encodes masks as consecutive 8-byte little-endian words.
func Write(w io.Writer, masks []uint64) error {
	var buf [8]byte
	for _, m := range masks {
		binary.LittleEndian.PutUint64(buf[:], m)
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("maskfile: write: %w", err)
		}
	}
	return nil
}

// Dump prints one 16-digit hex line per mask followed by a total count.
func Dump(w io.Writer, masks []uint64) error {
	for _, m := range masks {
		if _, err := fmt.Fprintf(w, "%016x\n", m); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "total: %d masks\n", len(masks))
	return err
}
