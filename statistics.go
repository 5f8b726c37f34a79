package rdt

import "github.com/rs/zerolog"

// Statistics carries the per-session packet counters. The session owns
// it exclusively and mutates it once per loop iteration, so plain
// integers suffice.
type Statistics struct {
	PacketsSent       int64
	PacketsReceived   int64
	CorruptedReceived int64
}

// Fields attaches the counters to a log event.
func (stats Statistics) Fields(event *zerolog.Event) *zerolog.Event {
	return event.
		Int64("packets_sent", stats.PacketsSent).
		Int64("packets_received", stats.PacketsReceived).
		Int64("corrupted_received", stats.CorruptedReceived)
}
