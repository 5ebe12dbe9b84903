package common

import (
	"encoding/binary"
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestVarUintKnownValues(t *testing.T) {
	tests := []struct {
		x    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xAC, 0x02}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, WriteVarUint(nil, tt.x))
		require.Equal(t, tt.want, WriteVarUintTo(nil, tt.x))
		require.Equal(t, len(tt.want), VarUintLen(tt.x))
		got, n := ReadVarUint(tt.want)
		require.Equal(t, tt.x, got)
		require.Equal(t, len(tt.want), n)
	}
}

func TestVarUintMatchesBinary(t *testing.T) {
	same := func(x uint64) bool {
		want := binary.AppendUvarint(nil, x)
		got := WriteVarUint([]byte{0xEE}, x)[1:]
		if string(want) != string(got) || VarUintLen(x) != len(want) {
			return false
		}
		v, n := ReadVarUint(append(got, 0xFF))
		return v == x && n == len(want)
	}
	require.NoError(t, quick.Check(same, &quick.Config{MaxCount: 2000}))

	buf := WriteVarUintTo(nil, math.MaxUint64)
	require.Len(t, buf, MaxVarintLen)
}

func TestReadVarUintTruncated(t *testing.T) {
	_, n := ReadVarUint(nil)
	require.Zero(t, n)
	_, n = ReadVarUint([]byte{0x80, 0x80})
	require.Zero(t, n)

	long := make([]byte, MaxVarintLen+1)
	for i := range long {
		long[i] = 0x80
	}
	_, n = ReadVarUint(long)
	require.Zero(t, n)
}
