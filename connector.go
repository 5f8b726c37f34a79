package rdt

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// connector is the transport a session runs on. Open blocks until the
// channel to the peer is ready or has failed; Read blocks until data
// arrives or the peer closes.
type connector interface {
	Open() error
	Close() error
	Read(buffer []byte) (int, error)
	Write(buffer []byte) (int, error)
}

var (
	// ErrRelayRejected means the relay answered the handshake with an
	// ERROR line; the error detail is appended.
	ErrRelayRejected = errors.New("relay reported an error")

	// ErrProtocolViolation means the relay answered the handshake with
	// something other than WAITING, OK or ERROR.
	ErrProtocolViolation = errors.New("unexpected relay response")
)

// relayConnector is a TCP connection to the relay service. Open dials
// and drives the HELLO handshake; after that the connection is a plain
// byte stream with no deadline.
type relayConnector struct {
	address        string
	connectionID   string
	lossRate       float64
	corruptRate    float64
	maxDelay       int
	connectTimeout time.Duration
	conn           net.Conn
	log            zerolog.Logger
}

func newRelayConnector(cfg Config, log zerolog.Logger) *relayConnector {
	return &relayConnector{
		address:        cfg.RelayAddress,
		connectionID:   cfg.ConnectionID,
		lossRate:       cfg.LossRate,
		corruptRate:    cfg.CorruptRate,
		maxDelay:       cfg.MaxDelay,
		connectTimeout: cfg.ConnectTimeout,
		log:            log,
	}
}

func (connector *relayConnector) Open() error {
	conn, err := net.DialTimeout("tcp", connector.address, connector.connectTimeout)
	if err != nil {
		return fmt.Errorf("connect to relay %s: %w", connector.address, err)
	}
	connector.conn = conn

	if err := connector.handshake(); err != nil {
		conn.Close()
		connector.conn = nil
		return err
	}
	return nil
}

// handshake requests relay service and waits until a sender is paired.
// The connect timeout applies to every handshake read and is lifted
// once the relay reports OK.
func (connector *relayConnector) handshake() error {
	request := fmt.Sprintf("HELLO R %v %v %d %s",
		connector.lossRate, connector.corruptRate, connector.maxDelay, connector.connectionID)
	if _, err := connector.conn.Write([]byte(request)); err != nil {
		return fmt.Errorf("send handshake: %w", err)
	}
	connector.log.Info().Str("request", request).Msg("handshake sent")

	buffer := make([]byte, handshakeBufferSize)
	for {
		if err := connector.conn.SetReadDeadline(time.Now().Add(connector.connectTimeout)); err != nil {
			return fmt.Errorf("set handshake deadline: %w", err)
		}
		n, err := connector.conn.Read(buffer)
		if err != nil {
			return fmt.Errorf("read handshake response: %w", err)
		}
		response := strings.TrimSpace(string(buffer[:n]))

		switch {
		case strings.HasPrefix(response, "OK"):
			connector.log.Info().Str("response", response).Msg("channel established")
			return connector.conn.SetReadDeadline(time.Time{})
		case strings.HasPrefix(response, "WAITING"):
			connector.log.Info().Msg("waiting for a sender")
		case strings.HasPrefix(response, "ERROR"):
			detail := strings.TrimSpace(strings.TrimPrefix(response, "ERROR"))
			return fmt.Errorf("%w: %s", ErrRelayRejected, detail)
		default:
			return fmt.Errorf("%w: %q", ErrProtocolViolation, response)
		}
	}
}

func (connector *relayConnector) Close() error {
	if connector.conn == nil {
		return nil
	}
	return connector.conn.Close()
}

func (connector *relayConnector) Read(buffer []byte) (int, error) {
	return connector.conn.Read(buffer)
}

func (connector *relayConnector) Write(buffer []byte) (int, error) {
	return connector.conn.Write(buffer)
}
