package bitperm

import (
	"math/bits"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteMapJSONRoundTrip(t *testing.T) {
	m, err := Gift64.ByteMap()
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, m.WriteJSON(&sb))

	parsed, err := ParseByteMap(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, m, parsed)
}

func TestParseByteMapRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"not JSON":       "spam",
		"wrong arity":    `[{}]`,
		"multi-bit key":  `[{"0x03": "0x0000000000000001"}]`,
		"multi-bit mask": `[{"0x01": "0x0000000000000003"}]`,
		"bad hex":        `[{"0x01": "0xzz"}]`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseByteMap(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestInvertPopulationCounts(t *testing.T) {
	m, err := Gift64.ByteMap()
	require.NoError(t, err)

	inv, err := m.Invert()
	require.NoError(t, err)

	// A bit permutation preserves Hamming weight, so every table entry
	// must have as many set bits as its column index.
	for off := 0; off < 8; off++ {
		for in := 0; in < 0x100; in++ {
			assert.Equal(t, bits.OnesCount(uint(in)), bits.OnesCount64(inv[off][in]),
				"entry [%d][%#02x]", off, in)
		}
	}
}

func TestInvertRoundTrips(t *testing.T) {
	for _, name := range []string{"gift64", "present"} {
		t.Run(name, func(t *testing.T) {
			perm, ok := ByName(name)
			require.True(t, ok)

			fwd, err := perm.Table()
			require.NoError(t, err)
			m, err := perm.ByteMap()
			require.NoError(t, err)
			inv, err := m.Invert()
			require.NoError(t, err)

			words := []uint64{0, 1, 0x8000000000000000, 0xdeadbeefcafef00d, ^uint64(0)}
			for _, w := range words {
				assert.Equal(t, w, inv.Apply(fwd.Apply(w)), "word %#x", w)
				assert.Equal(t, w, fwd.Apply(inv.Apply(w)), "word %#x", w)
			}
		})
	}
}

func TestInvertRejectsNonBijection(t *testing.T) {
	m, err := Gift64.ByteMap()
	require.NoError(t, err)

	// Point two input bits at the same output bit.
	m[0][0x02] = m[0][0x01]

	table, err := m.Invert()
	assert.Error(t, err)
	assert.Nil(t, table, "no table may be produced for a non-bijective map")
}

func TestValidateRejectsMissingEntry(t *testing.T) {
	m, err := Gift64.ByteMap()
	require.NoError(t, err)

	delete(m[3], 0x10)
	assert.Error(t, m.Validate())
}
