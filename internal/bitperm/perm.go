package bitperm

import "fmt"

// Permutation describes a bijective rearrangement of the 64 bit positions
// of a word: perm[i] is the output position of input bit i.
type Permutation []int

// Gift64 is the bit permutation of GIFT-64.
var Gift64 = Permutation{
	0, 17, 34, 51, 48, 1, 18, 35, 32, 49, 2, 19, 16, 33, 50, 3,
	4, 21, 38, 55, 52, 5, 22, 39, 36, 53, 6, 23, 20, 37, 54, 7,
	8, 25, 42, 59, 56, 9, 26, 43, 40, 57, 10, 27, 24, 41, 58, 11,
	12, 29, 46, 63, 60, 13, 30, 47, 44, 61, 14, 31, 28, 45, 62, 15,
}

// Present is the bit permutation of PRESENT: bit i moves to 16*i mod 63,
// bit 63 is fixed.
var Present = presentPerm()

func presentPerm() Permutation {
	p := make(Permutation, 64)
	for i := 0; i < 63; i++ {
		p[i] = 16 * i % 63
	}
	p[63] = 63
	return p
}

// ByName looks up a built-in permutation by cipher name.
func ByName(name string) (Permutation, bool) {
	switch name {
	case "gift64":
		return Gift64, true
	case "present":
		return Present, true
	}
	return nil, false
}

// Validate checks that the permutation covers all 64 bit positions
// exactly once.
func (p Permutation) Validate() error {
	if len(p) != 64 {
		return fmt.Errorf("bitperm: permutation has %d entries, want 64", len(p))
	}
	var seen uint64
	for i, o := range p {
		if o < 0 || o > 63 {
			return fmt.Errorf("bitperm: entry %d: bit position %d out of range", i, o)
		}
		if seen&(1<<o) != 0 {
			return fmt.Errorf("bitperm: entry %d: duplicate bit position %d", i, o)
		}
		seen |= 1 << o
	}
	return nil
}

// Masks returns the mask sequence of the permutation: the i-th mask has
// exactly the bit p[i] set.
func (p Permutation) Masks() []uint64 {
	masks := make([]uint64, len(p))
	for i, o := range p {
		masks[i] = 1 << o
	}
	return masks
}

// Table expands the permutation into a byte-wise lookup table:
// Table[off][b] is the image of byte value b placed at byte offset off.
func (p Permutation) Table() (*Table, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var t Table
	for off := 0; off < 8; off++ {
		for b := 0; b < 0x100; b++ {
			var o uint64
			for j := 0; j < 8; j++ {
				if b&(1<<j) != 0 {
					o |= 1 << p[8*off+j]
				}
			}
			t[off][b] = o
		}
	}
	return &t, nil
}

// ByteMap returns the byte-wise description of the permutation: for each
// byte offset, a map from single-bit byte values to single-bit output
// masks.
func (p Permutation) ByteMap() (ByteMap, error) {
	if err := p.Validate(); err != nil {
		return ByteMap{}, err
	}
	var m ByteMap
	for off := 0; off < 8; off++ {
		m[off] = make(map[byte]uint64, 8)
		for j := 0; j < 8; j++ {
			m[off][1<<j] = 1 << p[8*off+j]
		}
	}
	return m, nil
}
