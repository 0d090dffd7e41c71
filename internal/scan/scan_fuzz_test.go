package scan

import (
	"bytes"
	"testing"
)

func FuzzOffsets(f *testing.F) {
	// Seed: two back-to-back EBML headers
	f.Add(append(append([]byte{}, EBMLHeader[:]...), EBMLHeader[:]...))
	// Seed: header buried in noise
	f.Add(append(append([]byte{0x00, 0xFF, 0x1A}, EBMLHeader[:]...), 0x1A, 0x45))
	f.Add([]byte{})
	f.Add([]byte{0x1A, 0x45, 0xDF})

	f.Fuzz(func(t *testing.T, data []byte) {
		offs := Offsets(data, EBMLHeader)
		for _, o := range offs {
			if o < 0 || o > len(data)-len(EBMLHeader) {
				t.Fatalf("offset %d out of range for %d-byte buffer", o, len(data))
			}
			if !bytes.Equal(data[o:o+len(EBMLHeader)], EBMLHeader[:]) {
				t.Fatalf("offset %d does not point at a marker", o)
			}
		}
	})
}
