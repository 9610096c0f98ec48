package mediacheck

import "bytes"

// sniffLen covers the ftyp box and the first three MPEG-TS packets.
const sniffLen = 512

// tsPacketSize is the fixed MPEG-TS packet length.
const tsPacketSize = 188

// sniff reports whether header starts with any known container
// signature.
func sniff(header []byte) bool {
	return sniffRIFF(header) || sniffEBML(header) || sniffMP4(header) || sniffTS(header)
}

// sniffRIFF matches AVI files: a RIFF chunk whose form type is "AVI ".
func sniffRIFF(header []byte) bool {
	if len(header) < 12 {
		return false
	}

	return bytes.Equal(header[:4], []byte("RIFF")) && bytes.Equal(header[8:12], []byte("AVI "))
}

// sniffEBML matches Matroska and WebM files by the EBML magic.
func sniffEBML(header []byte) bool {
	return bytes.HasPrefix(header, []byte{0x1A, 0x45, 0xDF, 0xA3})
}

// sniffMP4 matches MP4 and MOV files: the first box must be "ftyp".
func sniffMP4(header []byte) bool {
	if len(header) < 8 {
		return false
	}

	return bytes.Equal(header[4:8], []byte("ftyp"))
}

// sniffTS matches MPEG transport streams by the 0x47 sync byte at the
// start of each packet the header covers.
func sniffTS(header []byte) bool {
	if len(header) == 0 || header[0] != 0x47 {
		return false
	}

	for offset := tsPacketSize; offset < len(header); offset += tsPacketSize {
		if header[offset] != 0x47 {
			return false
		}
	}

	return true
}
