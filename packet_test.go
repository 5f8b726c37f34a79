package rdt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PacketTestSuite struct {
	rdtTestSuite
}

func (suite *PacketTestSuite) TestAckPacketIsSelfConsistent() {
	for _, bit := range []int{0, 1} {
		pkt := createAckPacket(bit)
		suite.Len(pkt.buffer, packetLength)
		suite.True(verifyChecksum(pkt.buffer))

		ack, ok := pkt.getAckBit()
		suite.True(ok)
		suite.Equal(bit, ack)
	}
}

// The paired sender tokenizes the ack frame and reads the first
// non-blank digit, so the sequence slot must stay blank and the ack
// digit must sit in the ack slot.
func (suite *PacketTestSuite) TestAckPacketMatchesSenderLayout() {
	pkt := createAckPacket(1)

	suite.Equal(byte(padByte), pkt.buffer[seqPosition.Start])
	suite.Equal(byte('1'), pkt.buffer[ackPosition.Start])
	suite.Equal(strings.Repeat(" ", payloadLength), string(pkt.getPayload()))

	expected := "  1 " + strings.Repeat(" ", payloadLength) + " " + "00817"
	suite.Equal(expected, string(pkt.buffer))
}

func (suite *PacketTestSuite) TestParseDataFrame() {
	frame := createDataFrame(1, "That was the time fo")
	suite.Len(frame, packetLength)
	suite.True(verifyChecksum(frame))

	pkt := parsePacket(frame)
	seq, ok := pkt.getSequenceBit()
	suite.True(ok)
	suite.Equal(1, seq)
	suite.Equal("That was the time fo", string(pkt.getPayload()))
}

func (suite *PacketTestSuite) TestParseShortPayloadIsPadded() {
	pkt := parsePacket(createDataFrame(0, "HELLO"))
	suite.Equal("HELLO"+strings.Repeat(" ", payloadLength-5), string(pkt.getPayload()))
}

func (suite *PacketTestSuite) TestSequenceBitValidity() {
	frame := createDataFrame(0, "HELLO")
	frame[seqPosition.Start] = 'X'

	_, ok := parsePacket(frame).getSequenceBit()
	suite.False(ok)
}

func TestPacketTestSuite(t *testing.T) {
	suite.Run(t, new(PacketTestSuite))
}
