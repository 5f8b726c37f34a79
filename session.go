package rdt

import (
	"bytes"

	"github.com/rs/zerolog"
)

// Session drives one receive-and-acknowledge exchange against the
// relay. It owns the transport, the receiver state, the reassembly
// buffer and the counters for the lifetime of the connection; nothing
// runs concurrently with it.
type Session struct {
	connector connector
	receiver  *receiver
	buffer    bytes.Buffer
	stats     Statistics
	log       zerolog.Logger
}

// NewSession builds a session over a relay connection described by
// cfg. Nothing is dialed until Run.
func NewSession(cfg Config, log zerolog.Logger) *Session {
	return newSession(newRelayConnector(cfg, log), log)
}

func newSession(conn connector, log zerolog.Logger) *Session {
	return &Session{connector: conn, receiver: newReceiver(), log: log}
}

// Run opens the transport, performs the relay handshake and receives
// until the sender finishes. Transport failures during the data phase
// count as end-of-stream, not as errors; only connection and handshake
// failures are returned.
func (session *Session) Run() error {
	session.log.Info().Msg("receiver starting")
	if err := session.connector.Open(); err != nil {
		return err
	}
	defer func() {
		if err := session.connector.Close(); err != nil {
			session.log.Debug().Err(err).Msg("transport close")
		}
	}()

	session.receiveLoop()

	session.stats.Fields(session.log.Info()).
		Str("checksum", session.Checksum()).
		Msg("receiver done")
	return nil
}

// receiveLoop reads one frame at a time and reacts. Accepted payloads
// are appended in validation order, which equals transmission order
// under the alternating-bit contract.
func (session *Session) receiveLoop() {
	buffer := make([]byte, packetLength)
	for {
		n, err := session.connector.Read(buffer)
		if err != nil || n == 0 {
			// EOF and abrupt resets both mean the sender is done.
			return
		}
		session.stats.PacketsReceived++

		status, ack, payload := session.receiver.processPacket(buffer[:n])
		if status == invalidPacket {
			session.stats.CorruptedReceived++
		}
		if payload != nil {
			session.buffer.Write(payload)
		}
		if _, err := session.connector.Write(ack.buffer); err != nil {
			return
		}
		session.stats.PacketsSent++
	}
}

// Data returns the reassembled payload with trailing padding removed.
func (session *Session) Data() []byte {
	return bytes.TrimRight(session.buffer.Bytes(), " ")
}

// Checksum returns the checksum of the reassembled payload. It matches
// the value the paired sender prints for the transferred file.
func (session *Session) Checksum() string {
	return checksum(session.Data())
}

// Stats returns a copy of the session counters.
func (session *Session) Stats() Statistics {
	return session.stats
}
