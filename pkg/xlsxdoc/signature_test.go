package xlsxdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSignature(t *testing.T) {
	zip := append([]byte{0x50, 0x4B, 0x03, 0x04}, make([]byte, 64)...)
	ole2 := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 64)...)

	assert.Equal(t, SignatureZIP, DetectSignature(zip))
	assert.Equal(t, SignatureOLE2, DetectSignature(ole2))
	assert.Equal(t, SignatureUnknown, DetectSignature([]byte("plain text file")))
	assert.Equal(t, SignatureUnknown, DetectSignature([]byte{0x50, 0x4B}))
	assert.Equal(t, SignatureUnknown, DetectSignature(nil))
}
