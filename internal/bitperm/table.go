package bitperm

import (
	"fmt"
	"io"
	"strings"
)

// Table is a byte-wise lookup table for a 64-bit bit permutation:
// 8 byte offsets by 256 byte values. Row off, column b holds the OR of
// the output masks of every bit set in b when placed at byte offset off.
type Table [8][0x100]uint64

// Apply puts x through the permutation, one byte at a time.
func (t *Table) Apply(x uint64) uint64 {
	var o uint64
	for off := 0; off < 8; off++ {
		o |= t[off][byte(x>>(8*off))]
	}
	return o
}

// Format writes the table as nested array literals: one bracketed block
// per row, 8 zero-padded hex values per source line. Output is stable
// across runs.
func (t *Table) Format(w io.Writer) error {
	for _, row := range t {
		var lines [0x100 / 8]string
		for i := range lines {
			hex := make([]string, 8)
			for j, v := range row[8*i : 8*i+8] {
				hex[j] = fmt.Sprintf("0x%016x", v)
			}
			lines[i] = strings.Join(hex, ", ")
		}

		if _, err := fmt.Fprintf(w, " [ %s ,\n", lines[0]); err != nil {
			return err
		}
		for _, l := range lines[1 : len(lines)-1] {
			if _, err := fmt.Fprintf(w, "   %s ,\n", l); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "   %s ],\n", lines[len(lines)-1]); err != nil {
			return err
		}
	}
	return nil
}
