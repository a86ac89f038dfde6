package kernel

import (
	"context"
	"sync"
)

// MaxMessageBytes is the maximum payload size for IPC messages.
const MaxMessageBytes = 256

// Message is a fixed-size message envelope.
type Message struct {
	From Endpoint
	To   Endpoint
	Kind uint8
	Len  uint16
	Data [MaxMessageBytes]byte
}

// Payload returns the used part of Data.
func (m *Message) Payload() []byte { return m.Data[:m.Len] }

const (
	MsgLog uint8 = iota + 1
)

const mailboxSlots = 32

// Mailbox is a fixed-size multi-producer, single-consumer queue. The zero
// value is ready to use.
//
// Blocked senders and the receiver park on one-slot signal channels instead
// of spinning.
type Mailbox struct {
	_ [0]func() // prevent accidental copying.

	mu    sync.Mutex
	head  uint32
	tail  uint32
	slots [mailboxSlots]Message

	ready chan struct{}
	space chan struct{}
}

func (mb *Mailbox) initLocked() {
	if mb.ready == nil {
		mb.ready = make(chan struct{}, 1)
		mb.space = make(chan struct{}, 1)
	}
}

func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// Len returns the number of queued messages.
func (mb *Mailbox) Len() int {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return int(mb.head - mb.tail)
}

// TrySend attempts to enqueue a message, returning false if the mailbox is full.
func (mb *Mailbox) TrySend(msg Message) bool {
	mb.mu.Lock()
	mb.initLocked()
	if mb.head-mb.tail >= mailboxSlots {
		mb.mu.Unlock()
		return false
	}
	mb.slots[mb.head%mailboxSlots] = msg
	mb.head++
	ready, space := mb.ready, mb.space
	room := mb.head-mb.tail < mailboxSlots
	mb.mu.Unlock()

	notify(ready)
	if room {
		// Pass the wakeup on to the next parked sender.
		notify(space)
	}
	return true
}

// Send enqueues a message, waiting for a free slot until ctx is done.
func (mb *Mailbox) Send(ctx context.Context, msg Message) error {
	for {
		if mb.TrySend(msg) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-mb.signals().space:
		}
	}
}

// TryRecv attempts to dequeue one message, returning false if empty.
func (mb *Mailbox) TryRecv() (Message, bool) {
	mb.mu.Lock()
	mb.initLocked()
	if mb.tail == mb.head {
		mb.mu.Unlock()
		return Message{}, false
	}
	msg := mb.slots[mb.tail%mailboxSlots]
	mb.tail++
	space := mb.space
	mb.mu.Unlock()

	notify(space)
	return msg, true
}

// Recv blocks until one message is available or ctx is done.
func (mb *Mailbox) Recv(ctx context.Context) (Message, error) {
	for {
		if msg, ok := mb.TryRecv(); ok {
			return msg, nil
		}
		select {
		case <-ctx.Done():
			return Message{}, ctx.Err()
		case <-mb.signals().ready:
		}
	}
}

type mailboxSignals struct {
	ready chan struct{}
	space chan struct{}
}

func (mb *Mailbox) signals() mailboxSignals {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.initLocked()
	return mailboxSignals{ready: mb.ready, space: mb.space}
}
