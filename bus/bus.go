// Package bus is a small in-process publish/subscribe bus with retained
// messages. Services publish state snapshots on it; consumers subscribe by
// exact topic.
package bus

import (
	"strings"
	"sync"
)

// -----------------------------------------------------------------------------
// Topics + Messages
// -----------------------------------------------------------------------------

// Topic is a path of string tokens, e.g. {"hal", "state", "system", "reset"}.
type Topic []string

func (t Topic) String() string { return strings.Join(t, "/") }

type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
}

// -----------------------------------------------------------------------------
// Subscription
// -----------------------------------------------------------------------------

type Subscription struct {
	topic Topic
	ch    chan *Message
	conn  *Connection
}

func (s *Subscription) Topic() Topic             { return s.topic }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

// -----------------------------------------------------------------------------
// Bus
// -----------------------------------------------------------------------------

// topicEntry holds the subscribers and retained message of one topic.
type topicEntry struct {
	subs     []*Subscription
	retained *Message
}

type Bus struct {
	mu     sync.Mutex
	topics map[string]*topicEntry
	qLen   int
}

// NewBus creates a new bus with the given subscription queue length.
func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8
	}
	return &Bus{
		topics: make(map[string]*topicEntry),
		qLen:   queueLen,
	}
}

func (b *Bus) entry(t Topic, create bool) *topicEntry {
	k := t.String()
	e := b.topics[k]
	if e == nil && create {
		e = &topicEntry{}
		b.topics[k] = e
	}
	return e
}

// Publish delivers msg to every subscriber of its topic. A retained message
// replaces the topic's retained value; a retained message with a nil
// payload clears it.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.entry(msg.Topic, msg.Retained)
	if e == nil {
		return
	}
	for _, sub := range e.subs {
		deliver(sub.ch, msg)
	}
	if msg.Retained {
		if msg.Payload == nil {
			e.retained = nil
		} else {
			e.retained = msg
		}
	}
	b.prune(msg.Topic, e)
}

// Retained returns the retained message for t, if any.
func (b *Bus) Retained(t Topic) (*Message, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if e := b.entry(t, false); e != nil && e.retained != nil {
		return e.retained, true
	}
	return nil, false
}

// deliver never blocks; when the queue is full the oldest message is dropped.
func deliver(ch chan *Message, msg *Message) {
	for {
		select {
		case ch <- msg:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func (b *Bus) prune(t Topic, e *topicEntry) {
	if len(e.subs) == 0 && e.retained == nil {
		delete(b.topics, t.String())
	}
}

func (b *Bus) subscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e := b.entry(sub.topic, true)
	e.subs = append(e.subs, sub)
	if e.retained != nil {
		deliver(sub.ch, e.retained)
	}
}

func (b *Bus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e := b.entry(sub.topic, false)
	if e == nil {
		return
	}
	for i, s := range e.subs {
		if s == sub {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			break
		}
	}
	b.prune(sub.topic, e)
}

// -----------------------------------------------------------------------------
// Connection
// -----------------------------------------------------------------------------

// Connection groups the subscriptions of one client so they can be
// released together.
type Connection struct {
	bus  *Bus
	id   string
	mu   sync.Mutex
	subs []*Subscription
}

func (b *Bus) NewConnection(id string) *Connection {
	return &Connection{bus: b, id: id}
}

func (c *Connection) ID() string { return c.id }

func (c *Connection) Publish(msg *Message) { c.bus.Publish(msg) }

// NewMessage builds a message for topic t.
func (c *Connection) NewMessage(t Topic, payload any, retained bool) *Message {
	return &Message{Topic: t, Payload: payload, Retained: retained}
}

func (c *Connection) Subscribe(t Topic) *Subscription {
	sub := &Subscription{
		topic: append(Topic(nil), t...),
		ch:    make(chan *Message, c.bus.qLen),
		conn:  c,
	}
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	c.bus.subscribe(sub)
	return sub
}

// Unsubscribe removes sub and closes its channel.
func (c *Connection) Unsubscribe(sub *Subscription) {
	c.mu.Lock()
	found := false
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			found = true
			break
		}
	}
	c.mu.Unlock()
	if !found {
		return
	}
	c.bus.unsubscribe(sub)
	close(sub.ch)
}

// Disconnect releases every subscription of the connection.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()
	for _, sub := range subs {
		c.bus.unsubscribe(sub)
		close(sub.ch)
	}
}
