package rdt

import "time"

// Wire layout of the fixed 30-byte frame, shared by data and
// acknowledgment packets. The checksum field always covers every byte
// before it.
const (
	packetLength   = 30
	checksumLength = 5
	contentLength  = packetLength - checksumLength
	payloadLength  = 20
	padByte        = ' '
)

type position struct {
	Start int
	End   int
}

var (
	seqPosition      = position{0, 1}
	ackPosition      = position{2, 3}
	payloadPosition  = position{4, 24}
	checksumPosition = position{25, 30}
)

type statusCode int

const (
	success statusCode = iota
	invalidPacket
	duplicatePacket
)

const (
	// DefaultRelayAddress is the relay service the paired sender uses.
	DefaultRelayAddress = "128.119.245.12:20008"

	// DefaultConnectTimeout bounds connection establishment and the
	// handshake reads. The data phase runs with no deadline.
	DefaultConnectTimeout = 60 * time.Second

	handshakeBufferSize = 1024
)
