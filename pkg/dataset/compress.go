package dataset

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pierrec/lz4/v4"

	"github.com/rodrigo1392/misc-tools/pkg/persist"
	"github.com/rodrigo1392/misc-tools/pkg/safeconv"
)

// Container layout: 4-byte magic, one flag byte (1 = LZ4 block,
// 0 = raw payload), 4-byte little-endian uncompressed length, payload.
const (
	containerMagic = "MTD1"
	headerSize     = len(containerMagic) + 1 + 4

	flagRaw = 0
	flagLZ4 = 1
)

// ErrBadContainer is returned when a file is not a dataset container.
var ErrBadContainer = errors.New("dataset: not a dataset container")

// encodeGroups gob-encodes the groups and frames them as a container.
func encodeGroups(groups []*Group) ([]byte, error) {
	var payload bytes.Buffer

	err := persist.NewGobCodec().Encode(&payload, groups)
	if err != nil {
		return nil, fmt.Errorf("encode store: %w", err)
	}

	return compressPayload(payload.Bytes()), nil
}

// decodeGroups unwraps a container and gob-decodes its groups.
func decodeGroups(data []byte) ([]*Group, error) {
	payload, err := decompressPayload(data)
	if err != nil {
		return nil, err
	}

	var groups []*Group

	err = persist.NewGobCodec().Decode(bytes.NewReader(payload), &groups)
	if err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}

	return groups, nil
}

// compressPayload frames payload as an LZ4 block container. Payloads
// the block coder cannot shrink are stored raw.
func compressPayload(payload []byte) []byte {
	header := make([]byte, 0, headerSize)
	header = append(header, containerMagic...)

	compressed := make([]byte, lz4.CompressBlockBound(len(payload)))

	written, err := lz4.CompressBlock(payload, compressed, nil)
	if err != nil || written == 0 || written >= len(payload) {
		header = append(header, flagRaw)
		header = binary.LittleEndian.AppendUint32(header, safeconv.MustIntToUint32(len(payload)))

		return append(header, payload...)
	}

	header = append(header, flagLZ4)
	header = binary.LittleEndian.AppendUint32(header, safeconv.MustIntToUint32(len(payload)))

	return append(header, compressed[:written]...)
}

// decompressPayload unwraps a container built by compressPayload.
func decompressPayload(data []byte) ([]byte, error) {
	if len(data) < headerSize || string(data[:len(containerMagic)]) != containerMagic {
		return nil, ErrBadContainer
	}

	flag := data[len(containerMagic)]
	length := binary.LittleEndian.Uint32(data[len(containerMagic)+1 : headerSize])
	body := data[headerSize:]

	switch flag {
	case flagRaw:
		if len(body) != int(length) {
			return nil, fmt.Errorf("%w: truncated raw payload", ErrBadContainer)
		}

		return body, nil

	case flagLZ4:
		payload := make([]byte, length)

		n, err := lz4.UncompressBlock(body, payload)
		if err != nil {
			return nil, fmt.Errorf("decompress payload: %w", err)
		}

		if n != int(length) {
			return nil, fmt.Errorf("%w: truncated block", ErrBadContainer)
		}

		return payload, nil

	default:
		return nil, fmt.Errorf("%w: unknown flag %d", ErrBadContainer, flag)
	}
}
