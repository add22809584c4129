package bitperm

import (
	"encoding/json"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"
)

// ByteMap is a byte-wise description of a 64-bit bit permutation. For
// each of the 8 input byte offsets it maps a single-bit byte value
// (0x01..0x80) to the 64-bit output mask of that bit. A valid map is a
// bijection over the 64 bit positions.
//
// The wire form is a JSON array of 8 objects with hex-string keys and
// values:
//
//	[
//	  {"0x01": "0x0000000000000001", "0x02": "0x0000000000020000", ...},
//	  ...
//	]
type ByteMap [8]map[byte]uint64

// ParseByteMap reads the JSON wire form and validates every invariant:
// keys and masks must each have exactly one bit set, and the 64 entries
// must cover all 64 output bit positions exactly once.
func ParseByteMap(r io.Reader) (ByteMap, error) {
	var raw [8]map[string]string
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return ByteMap{}, fmt.Errorf("bitperm: parse byte map: %w", err)
	}

	var m ByteMap
	for off, row := range raw {
		m[off] = make(map[byte]uint64, len(row))
		for k, v := range row {
			kb, err := parseHex(k, 8)
			if err != nil {
				return ByteMap{}, fmt.Errorf("bitperm: offset %d: key %q: %w", off, k, err)
			}
			if bits.OnesCount64(kb) != 1 {
				return ByteMap{}, fmt.Errorf("bitperm: offset %d: key %q is not a single-bit value", off, k)
			}
			mask, err := parseHex(v, 64)
			if err != nil {
				return ByteMap{}, fmt.Errorf("bitperm: offset %d: mask %q: %w", off, v, err)
			}
			m[off][byte(kb)] = mask
		}
	}

	if err := m.Validate(); err != nil {
		return ByteMap{}, err
	}
	return m, nil
}

// Validate checks that the map is a complete bijection: every
// (offset, input bit) pair present, every output mask a single bit, no
// output bit used twice.
func (m ByteMap) Validate() error {
	var seen uint64
	for off := 0; off < 8; off++ {
		for j := 0; j < 8; j++ {
			mask, ok := m[off][1<<j]
			if !ok {
				return fmt.Errorf("bitperm: offset %d: missing entry for bit %#02x", off, 1<<j)
			}
			if bits.OnesCount64(mask) != 1 {
				return fmt.Errorf("bitperm: offset %d, bit %#02x: mask %#016x does not have exactly one bit set",
					off, 1<<j, mask)
			}
			if seen&mask != 0 {
				return fmt.Errorf("bitperm: offset %d, bit %#02x: output bit %d already used",
					off, 1<<j, bits.TrailingZeros64(mask))
			}
			seen |= mask
		}
	}
	return nil
}

// Invert computes the full inverse lookup table. For each byte offset
// and each of the 256 byte values at that offset, the byte value is
// decomposed into its set bits, each bit's inverse mask is looked up,
// and the masks are ORed together. Every entry must preserve population
// count; the first violation aborts with an error and no table is
// returned.
func (m ByteMap) Invert() (*Table, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	// inv maps each forward output mask back to its input bit.
	inv := make(map[uint64]uint64, 64)
	for i := 0; i < 64; i++ {
		inv[m[i/8][1<<(i%8)]] = 1 << i
	}

	var t Table
	for off := 0; off < 8; off++ {
		for in := 0; in < 0x100; in++ {
			s := uint64(in) << (8 * off)
			var o uint64
			for k, v := range inv {
				if k&s != 0 {
					o |= v
				}
			}
			if bits.OnesCount64(o) != bits.OnesCount(uint(in)) {
				return nil, fmt.Errorf("bitperm: invert: entry [%d][%#02x]: population count %d, want %d",
					off, in, bits.OnesCount64(o), bits.OnesCount(uint(in)))
			}
			t[off][in] = o
		}
	}
	return &t, nil
}

// WriteJSON emits the wire form with stable key order and one offset
// object per line group, suitable for hand editing.
func (m ByteMap) WriteJSON(w io.Writer) error {
	raw := make([]map[string]string, 8)
	for off := 0; off < 8; off++ {
		row := make(map[string]string, len(m[off]))
		for k, v := range m[off] {
			row[fmt.Sprintf("0x%02x", k)] = fmt.Sprintf("0x%016x", v)
		}
		raw[off] = row
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("bitperm: write byte map: %w", err)
	}
	return nil
}

// parseHex accepts "0x"-prefixed or bare hex of at most bitSize bits.
func parseHex(s string, bitSize int) (uint64, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, bitSize)
	if err != nil {
		return 0, fmt.Errorf("not a %d-bit hex value: %w", bitSize, err)
	}
	return v, nil
}
