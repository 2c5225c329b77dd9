package dns

import (
	"encoding/binary"
	"strings"
)

// MaxPointerHops bounds how many compression pointers readName follows for a
// single name. A self-referential chain stops reading instead of looping.
const MaxPointerHops = 16

// EncodeName encodes a domain name to DNS wire format (RFC 1035 Section 3.1).
//
// DNS names are encoded as a sequence of labels, where each label is:
//   - 1 byte: length
//   - N bytes: label characters
//
// The name is terminated by a zero-length label (single 0x00 byte).
//
// Example: "www.example.com" encodes as:
//
//	[3]www[7]example[3]com[0]
//
// Callers are trusted: neither the 63 byte label limit nor the 255 byte name
// limit is enforced, and no compression is applied. A single trailing dot is
// accepted as the fully-qualified spelling of the same name. The empty name and
// "." both encode to the root label alone.
func EncodeName(domain string) []byte {
	domain = strings.TrimSuffix(domain, ".")
	if domain == "" {
		return []byte{0}
	}

	out := make([]byte, 0, len(domain)+2)
	for label := range strings.SplitSeq(domain, ".") {
		out = append(out, byte(len(label)))
		out = append(out, label...)
	}
	return append(out, 0)
}

// isCompressionPointer checks if the label length byte indicates a compression pointer.
// Compression pointers have the two high bits set (11xxxxxx = 0xC0 mask).
func isCompressionPointer(b byte) bool {
	return (b & 0xC0) == 0xC0
}

// skipName advances past the name starting at off without decoding it.
//
// A zero length byte ends the name and the cursor moves one past it. A
// compression pointer also ends the name: the pointer is not followed, only its
// two bytes are accounted for (clamped to the buffer length). Record fields
// after a name have a fixed width, so the pointed-to labels are never needed.
// Running off the end of the buffer returns len(msg).
func skipName(msg []byte, off int) int {
	cur := off
	for cur >= 0 && cur < len(msg) {
		length := msg[cur]
		if length == 0 {
			return cur + 1
		}
		if isCompressionPointer(length) {
			return min(cur+2, len(msg))
		}
		cur += int(length) + 1
	}
	return len(msg)
}

// readName decodes the possibly-compressed name starting at off.
//
// It returns the dot-joined labels and the offset at which the enclosing scan
// should continue. When a compression pointer is met, reading jumps to the
// pointed-to absolute offset; the continuation offset is the byte right after
// the first pointer and is not updated by chained pointers. At most
// MaxPointerHops pointers are followed.
//
// Truncated labels or pointers stop the read and return the labels decoded so
// far.
func readName(msg []byte, off int) (string, int) {
	labels := make([]string, 0, 6)
	cur := off
	jumped := false
	next := 0
	hops := 0

	for cur >= 0 && cur < len(msg) {
		length := int(msg[cur])
		if length == 0 {
			cur++
			break
		}
		if isCompressionPointer(msg[cur]) {
			if cur+1 >= len(msg) || hops >= MaxPointerHops {
				break
			}
			ptr := int(binary.BigEndian.Uint16(msg[cur:cur+2]) & 0x3FFF)
			if !jumped {
				next = cur + 2
			}
			jumped = true
			hops++
			cur = ptr
			continue
		}
		end := cur + 1 + length
		if end > len(msg) {
			break
		}
		labels = append(labels, string(msg[cur+1:end]))
		cur = end
	}

	if jumped {
		return joinLabels(labels), next
	}
	return joinLabels(labels), cur
}

// readUint16 reads a big-endian uint16 at off, returning 0 when the two bytes
// are not both inside msg.
func readUint16(msg []byte, off int) uint16 {
	if off < 0 || off+2 > len(msg) {
		return 0
	}
	return binary.BigEndian.Uint16(msg[off : off+2])
}

// joinLabels concatenates DNS labels with dots.
// Uses strings.Builder with size pre-allocation for efficiency.
func joinLabels(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	if len(labels) == 1 {
		return labels[0]
	}
	totalSize := len(labels) - 1 // dots
	for _, label := range labels {
		totalSize += len(label)
	}
	var b strings.Builder
	b.Grow(totalSize)
	b.WriteString(labels[0])
	for i := 1; i < len(labels); i++ {
		b.WriteByte('.')
		b.WriteString(labels[i])
	}
	return b.String()
}
