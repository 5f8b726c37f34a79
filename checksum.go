package rdt

import "fmt"

// checksum sums every byte of content and renders the total as a
// zero-padded five-digit decimal string. This is the legacy additive
// checksum shared with the paired sender, not an Internet checksum.
// A sum past 99999 widens the field; a single 25-byte frame content
// can never reach that, only a whole-transfer checksum can.
func checksum(content []byte) string {
	sum := 0
	for _, b := range content {
		sum += int(b)
	}
	return fmt.Sprintf("%05d", sum)
}

// verifyChecksum reports whether raw is a complete frame whose
// trailing checksum field matches the recomputed checksum of every
// byte before it. The comparison is string exact, so leading zeros
// matter.
func verifyChecksum(raw []byte) bool {
	if len(raw) < packetLength {
		return false
	}
	content := raw[:len(raw)-checksumLength]
	claimed := string(raw[len(raw)-checksumLength:])
	return checksum(content) == claimed
}
