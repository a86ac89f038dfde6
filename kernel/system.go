package kernel

import (
	"context"
	"fmt"
	"time"
)

// System holds the endpoint mailboxes and the timebase.
type System struct {
	mbox [endpointCount]Mailbox
	boot time.Time
}

// NewSystem creates a kernel instance. Ticks count from this call.
func NewSystem() *System {
	return &System{boot: time.Now()}
}

// Ticks returns milliseconds since boot.
func (s *System) Ticks() uint64 {
	return uint64(time.Since(s.boot) / time.Millisecond)
}

func newMessage(from, to Endpoint, kind uint8, payload []byte) Message {
	var msg Message
	msg.From = from
	msg.To = to
	msg.Kind = kind
	if len(payload) > MaxMessageBytes {
		payload = payload[:MaxMessageBytes]
	}
	msg.Len = uint16(len(payload))
	copy(msg.Data[:], payload)
	return msg
}

// TrySend copies the payload (truncated to MaxMessageBytes) into a message
// and enqueues it without blocking. It reports false when the destination
// mailbox is full or does not exist.
func (s *System) TrySend(from, to Endpoint, kind uint8, payload []byte) bool {
	if !to.valid() {
		return false
	}
	return s.mbox[to].TrySend(newMessage(from, to, kind, payload))
}

// Send is TrySend that waits for room until ctx is done.
func (s *System) Send(ctx context.Context, from, to Endpoint, kind uint8, payload []byte) error {
	if !to.valid() {
		return fmt.Errorf("kernel: send to unknown endpoint %d", to)
	}
	return s.mbox[to].Send(ctx, newMessage(from, to, kind, payload))
}

// Recv blocks until a message is available for the endpoint or ctx is done.
func (s *System) Recv(ctx context.Context, to Endpoint) (Message, error) {
	if !to.valid() {
		return Message{}, fmt.Errorf("kernel: recv on unknown endpoint %d", to)
	}
	return s.mbox[to].Recv(ctx)
}

// TryRecv dequeues one message for the endpoint without blocking.
func (s *System) TryRecv(to Endpoint) (Message, bool) {
	if !to.valid() {
		return Message{}, false
	}
	return s.mbox[to].TryRecv()
}
