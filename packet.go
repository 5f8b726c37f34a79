package rdt

// packet wraps one fixed-width wire frame. Data packets carry a
// sequence digit and a 20-byte payload region; acknowledgment packets
// carry only an ack digit and placeholder padding. Checksum validation
// is the caller's job, the codec never does it.
type packet struct {
	buffer []byte
}

func parsePacket(raw []byte) *packet {
	return &packet{buffer: raw}
}

// getSequenceBit returns the sequence bit of a data packet. ok is
// false when the sequence slot does not hold a binary digit.
func (pkt *packet) getSequenceBit() (int, bool) {
	switch pkt.buffer[seqPosition.Start] {
	case '0':
		return 0, true
	case '1':
		return 1, true
	}
	return 0, false
}

// getAckBit returns the acknowledgment bit, with ok false when the ack
// slot does not hold a binary digit.
func (pkt *packet) getAckBit() (int, bool) {
	switch pkt.buffer[ackPosition.Start] {
	case '0':
		return 0, true
	case '1':
		return 1, true
	}
	return 0, false
}

func (pkt *packet) getPayload() []byte {
	return pkt.buffer[payloadPosition.Start:payloadPosition.End]
}

// createAckPacket builds the 30-byte acknowledgment frame the paired
// sender expects: the ack slot holds the digit, every other content
// byte is padding, and the checksum of the content trails. Acks are
// pure control, no data rides on them.
func createAckPacket(ackBit int) *packet {
	buffer := make([]byte, packetLength)
	for i := 0; i < contentLength; i++ {
		buffer[i] = padByte
	}
	buffer[ackPosition.Start] = byte('0' + ackBit)
	copy(buffer[checksumPosition.Start:], checksum(buffer[:contentLength]))
	return &packet{buffer: buffer}
}
