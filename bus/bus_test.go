// bus/bus_test.go
package bus

import (
	"testing"
	"time"
)

var topicReset = Topic{"hal", "state", "system", "reset"}

func recv(t *testing.T, sub *Subscription) *Message {
	t.Helper()
	select {
	case got := <-sub.Channel():
		return got
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for message")
	}
	return nil
}

func TestBasicPubSub(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("test")
	sub := conn.Subscribe(topicReset)

	conn.Publish(conn.NewMessage(topicReset, "hello", false))
	if got := recv(t, sub); got.Payload.(string) != "hello" {
		t.Errorf("expected payload 'hello', got %v", got.Payload)
	}
	if _, ok := b.Retained(topicReset); ok {
		t.Fatal("non-retained publish stored a retained message")
	}
}

func TestRetainedMessage(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")
	conn.Publish(conn.NewMessage(topicReset, "persist", true))

	sub := conn.Subscribe(topicReset)
	if got := recv(t, sub); got.Payload.(string) != "persist" {
		t.Errorf("expected retained payload 'persist', got %v", got.Payload)
	}

	conn.Publish(conn.NewMessage(topicReset, nil, true))
	if _, ok := b.Retained(topicReset); ok {
		t.Fatal("nil retained payload should clear the retained message")
	}
}

func TestExactTopicMatch(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")
	sub := conn.Subscribe(Topic{"hal", "state"})

	conn.Publish(conn.NewMessage(topicReset, 1, false))
	select {
	case m := <-sub.Channel():
		t.Fatalf("unexpected delivery on %v", m.Topic)
	default:
	}
}

func TestFullQueueDropsOldest(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")
	sub := conn.Subscribe(topicReset)
	for i := 1; i <= 3; i++ {
		conn.Publish(conn.NewMessage(topicReset, i, false))
	}
	if got := recv(t, sub).Payload.(int); got != 2 {
		t.Fatalf("first queued = %d, want 2", got)
	}
	if got := recv(t, sub).Payload.(int); got != 3 {
		t.Fatalf("second queued = %d, want 3", got)
	}
}

func TestUnsubscribeAndDisconnectCloseChannels(t *testing.T) {
	b := NewBus(1)
	conn := b.NewConnection("test")
	a := conn.Subscribe(topicReset)
	c := conn.Subscribe(Topic{"other"})

	a.Unsubscribe()
	if _, ok := <-a.Channel(); ok {
		t.Fatal("channel open after Unsubscribe")
	}
	a.Unsubscribe() // second call is a no-op

	conn.Disconnect()
	if _, ok := <-c.Channel(); ok {
		t.Fatal("channel open after Disconnect")
	}
	if len(b.topics) != 0 {
		t.Fatalf("topics not pruned: %d left", len(b.topics))
	}
}
