// Package scan locates container start markers in a byte buffer. It knows
// nothing about what lies between markers; segment carving is the split
// package's job.
package scan

import "bytes"

// Marker is a fixed byte signature identifying the start of an embedded
// container. It is passed explicitly to Offsets so alternate container
// formats can reuse the scanner.
type Marker [4]byte

// EBMLHeader is the element ID that opens every MKV/WebM container.
var EBMLHeader = Marker{0x1A, 0x45, 0xDF, 0xA3}

// Offsets returns the byte offsets of every occurrence of m in data, in
// ascending order. Overlapping occurrences are all reported. A buffer
// shorter than the marker yields no offsets.
func Offsets(data []byte, m Marker) []int {
	var offs []int
	for i := 0; i+len(m) <= len(data); i++ {
		if bytes.Equal(data[i:i+len(m)], m[:]) {
			offs = append(offs, i)
		}
	}
	return offs
}
