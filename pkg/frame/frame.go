// Package frame packs a list of byte strings into one self-checking frame.
//
// Layout (all integers little endian):
//
//	magic "BS" | type | length u32 | flags | count varint | ends varint... | payload | crc32
//
// length covers the whole frame including the CRC. The CRC32 (IEEE) covers
// every byte after the magic and before the CRC. ends are cumulative end
// offsets of each part inside the uncompressed payload.
package frame

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/bytestr"
	"github.com/rawbytedev/bytestr/internal/common"
	"go.uber.org/zap"
)

const (
	Magic    = "BS"
	TypeData = 0x01

	// FlagCompressed stores the payload zstd-compressed.
	FlagCompressed byte = 1 << 0

	headerLen = len(Magic) + 1 + 4 + 1
	crcLen    = 4

	maxDecoded = 1 << 30
)

var (
	ErrNotFrame       = errors.New("frame: not a data frame")
	ErrLengthMismatch = errors.New("frame: length mismatch")
	ErrChecksum       = errors.New("frame: crc mismatch")
	ErrTruncated      = errors.New("frame: truncated")
)

func writePreamble(buf *bytes.Buffer, typ byte) {
	buf.WriteString(Magic)
	buf.WriteByte(typ)
}

func readPreamble(data []byte) (byte, error) {
	if len(data) < len(Magic)+1 || string(data[:len(Magic)]) != Magic {
		return 0, ErrNotFrame
	}
	return data[len(Magic)], nil
}

// Encode serializes parts into a data frame.
func Encode(parts []bytestr.View, flags byte) ([]byte, error) {
	payload := bytestr.Alloc(nil)
	defer payload.Release()

	ends := make([]uint64, 0, len(parts))
	for i, p := range parts {
		if err := p.Err(); err != nil {
			return nil, fmt.Errorf("frame: part %d: %w", i, err)
		}
		if err := payload.Push(p); err != nil {
			return nil, err
		}
		ends = append(ends, uint64(payload.Len()))
	}

	body := payload.View().Bytes()
	if flags&FlagCompressed != 0 {
		var err error
		if body, err = compress(body); err != nil {
			return nil, err
		}
	}

	buf := &bytes.Buffer{}
	writePreamble(buf, TypeData)
	// reserve length
	buf.Write([]byte{0, 0, 0, 0})
	buf.WriteByte(flags)

	table := common.WriteVarUintTo(nil, uint64(len(ends)))
	for _, e := range ends {
		table = common.WriteVarUint(table, e)
	}
	buf.Write(table)
	buf.Write(body)

	out := buf.Bytes()
	binary.LittleEndian.PutUint32(out[len(Magic)+1:], uint32(len(out)+crcLen))
	crc := crc32.ChecksumIEEE(out[len(Magic):])
	out = binary.LittleEndian.AppendUint32(out, crc)

	bytestr.Logger().Debug("frame encoded",
		zap.Int("parts", len(parts)),
		zap.Int("size", len(out)),
		zap.Bool("compressed", flags&FlagCompressed != 0))
	return out, nil
}

// Decode parses a data frame. Parts of an uncompressed frame borrow data;
// parts of a compressed frame borrow a freshly decompressed array.
func Decode(data []byte) ([]bytestr.View, error) {
	t, err := readPreamble(data)
	if err != nil {
		return nil, err
	}
	if t != TypeData {
		return nil, fmt.Errorf("%w: type 0x%02x", ErrNotFrame, t)
	}
	if len(data) < headerLen+crcLen {
		return nil, ErrTruncated
	}

	length := binary.LittleEndian.Uint32(data[len(Magic)+1:])
	if int(length) != len(data) {
		return nil, fmt.Errorf("%w: header says %d, have %d", ErrLengthMismatch, length, len(data))
	}
	end := len(data) - crcLen
	want := binary.LittleEndian.Uint32(data[end:])
	if crc32.ChecksumIEEE(data[len(Magic):end]) != want {
		return nil, ErrChecksum
	}
	flags := data[headerLen-1]

	pos := headerLen
	count, n := common.ReadVarUint(data[pos:end])
	if n == 0 || count > uint64(end-pos) {
		return nil, ErrTruncated
	}
	pos += n
	ends := make([]uint64, count)
	for i := range ends {
		e, n := common.ReadVarUint(data[pos:end])
		if n == 0 {
			return nil, ErrTruncated
		}
		ends[i] = e
		pos += n
	}

	payload := data[pos:end]
	if flags&FlagCompressed != 0 {
		if payload, err = decompress(payload); err != nil {
			return nil, err
		}
	}

	parts := make([]bytestr.View, len(ends))
	var start uint64
	for i, e := range ends {
		if e < start || e > uint64(len(payload)) {
			return nil, fmt.Errorf("%w: part %d ends at %d of %d", ErrTruncated, i, e, len(payload))
		}
		parts[i] = bytestr.Ref(payload[start:e])
		start = e
	}
	return parts, nil
}

func compress(raw []byte) ([]byte, error) {
	bestLevel := zstd.WithEncoderLevel(zstd.SpeedBetterCompression)
	enc, err := zstd.NewWriter(nil, bestLevel)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(raw, nil), nil
}

func decompress(comp []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecoded))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	out, err := dec.DecodeAll(comp, nil)
	if err != nil {
		return nil, fmt.Errorf("frame: decompress: %w", err)
	}
	return out, nil
}
