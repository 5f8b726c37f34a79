package rdt

import (
	"fmt"
	"io"

	"github.com/stretchr/testify/suite"
)

type rdtTestSuite struct {
	suite.Suite
}

func (suite *rdtTestSuite) handleTestError(err error) {
	if err != nil {
		suite.Errorf(err, "Error occurred")
	}
}

// createDataFrame builds a sender-side data frame: sequence digit, ack
// digit, payload padded to 20 characters, trailing checksum.
func createDataFrame(seqBit int, payload string) []byte {
	content := fmt.Sprintf("%d 0 %-20s ", seqBit, payload)
	return []byte(content + checksum([]byte(content)))
}

// corruptFrame returns a copy of frame with one payload byte flipped,
// so the checksum no longer matches.
func corruptFrame(frame []byte) []byte {
	mutated := make([]byte, len(frame))
	copy(mutated, frame)
	mutated[payloadPosition.Start]++
	return mutated
}

// channelConnector is an in-memory connector fed by channels, standing
// in for the relay during tests. Closing in ends the stream; readErr,
// when set, simulates an abrupt transport failure instead of a clean
// EOF.
type channelConnector struct {
	in      chan []byte
	out     chan []byte
	readErr error
}

func (connector *channelConnector) Open() error  { return nil }
func (connector *channelConnector) Close() error { return nil }

func (connector *channelConnector) Read(buffer []byte) (int, error) {
	buff, ok := <-connector.in
	if !ok {
		if connector.readErr != nil {
			return 0, connector.readErr
		}
		return 0, io.EOF
	}
	copy(buffer, buff)
	return len(buff), nil
}

func (connector *channelConnector) Write(buffer []byte) (int, error) {
	out := make([]byte, len(buffer))
	copy(out, buffer)
	connector.out <- out
	return len(buffer), nil
}
