package rdt

// receiver holds the alternating-bit ARQ receiver state: the sequence
// bit expected next and the ack bit last confirmed. Both stay
// consistent with the number of packets accepted so far, modulo 2.
type receiver struct {
	expectedSeq int
	lastAck     int
}

func newReceiver() *receiver {
	return &receiver{}
}

// processPacket is the decision step for one inbound raw frame. It
// performs no I/O: it returns the outcome, the acknowledgment packet
// to write back, and the payload to append (nil unless the frame was
// accepted).
//
// A corrupt or out-of-sequence frame is answered with an ack carrying
// the opposite of the current ack bit, which the sender reads as a
// retransmit request. There is no separate NAK frame type on this
// wire.
func (rcv *receiver) processPacket(raw []byte) (statusCode, *packet, []byte) {
	if !verifyChecksum(raw) {
		return invalidPacket, createAckPacket((rcv.lastAck + 1) % 2), nil
	}

	pkt := parsePacket(raw)
	seq, ok := pkt.getSequenceBit()
	if !ok || seq != rcv.expectedSeq {
		return duplicatePacket, createAckPacket((rcv.lastAck + 1) % 2), nil
	}

	// The positive ack carries the not-yet-advanced bit: the ack value
	// equals the sequence number just confirmed.
	ack := createAckPacket(rcv.lastAck)
	rcv.expectedSeq = (rcv.expectedSeq + 1) % 2
	rcv.lastAck = (rcv.lastAck + 1) % 2
	return success, ack, pkt.getPayload()
}
