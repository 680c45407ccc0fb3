package xlsxdoc

import "bytes"

// Signature identifies the container family of an uploaded document.
type Signature int

const (
	SignatureUnknown Signature = iota
	SignatureZIP               // OOXML package (.xlsx)
	SignatureOLE2              // legacy compound document (.xls)
)

var (
	zipMagic  = []byte{0x50, 0x4B, 0x03, 0x04}
	ole2Magic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectSignature inspects the leading bytes of data. Buffers shorter than
// the magic lengths yield SignatureUnknown.
func DetectSignature(data []byte) Signature {
	if len(data) >= len(zipMagic) && bytes.Equal(data[:len(zipMagic)], zipMagic) {
		return SignatureZIP
	}
	if len(data) >= len(ole2Magic) && bytes.Equal(data[:len(ole2Magic)], ole2Magic) {
		return SignatureOLE2
	}
	return SignatureUnknown
}
