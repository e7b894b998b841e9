package broadcast

import (
	"encoding/json"
	"testing"
	"time"
)

type testMsg struct {
	T    string `json:"t"`
	Body string `json:"body,omitempty"`
}

func recv(t *testing.T, ch chan []byte) testMsg {
	t.Helper()
	select {
	case data := <-ch:
		var m testMsg
		if err := json.Unmarshal(data, &m); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		return m
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for message")
		return testMsg{}
	}
}

func TestBroadcaster_JoinLeave(t *testing.T) {
	b := New()

	ch := make(chan []byte, 8)
	b.Join("c1", ch)
	if b.Size() != 1 {
		t.Errorf("Size() = %d, want 1", b.Size())
	}

	b.Leave("c1")
	if b.Size() != 0 {
		t.Errorf("Size() after Leave = %d, want 0", b.Size())
	}
}

func TestBroadcaster_Broadcast(t *testing.T) {
	b := New()

	ch1 := make(chan []byte, 8)
	ch2 := make(chan []byte, 8)
	b.Join("c1", ch1)
	b.Join("c2", ch2)

	b.Broadcast(testMsg{T: "hello", Body: "world"})

	for _, ch := range []chan []byte{ch1, ch2} {
		msg := recv(t, ch)
		if msg.T != "hello" || msg.Body != "world" {
			t.Errorf("got %+v, want t=hello body=world", msg)
		}
	}
}

func TestBroadcaster_BroadcastExcept(t *testing.T) {
	b := New()

	ch1 := make(chan []byte, 8)
	ch2 := make(chan []byte, 8)
	b.Join("c1", ch1)
	b.Join("c2", ch2)

	b.BroadcastExcept("c1", testMsg{T: "progress"})

	if msg := recv(t, ch2); msg.T != "progress" {
		t.Errorf("c2 got %+v, want t=progress", msg)
	}
	select {
	case <-ch1:
		t.Error("sender should not receive its own message")
	default:
	}
}

func TestBroadcaster_SkipsFullChannels(t *testing.T) {
	b := New()

	ch := make(chan []byte, 2)
	b.Join("c1", ch)

	for i := 0; i < 5; i++ {
		b.Broadcast(testMsg{T: "fill"})
	}

	// Must not block even though the channel overflowed
	done := make(chan bool)
	go func() {
		b.Broadcast(testMsg{T: "overflow"})
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Broadcast blocked on full channel")
	}
}

func TestBroadcaster_LeftMemberStopsReceiving(t *testing.T) {
	b := New()

	ch := make(chan []byte, 8)
	b.Join("c1", ch)
	b.Leave("c1")

	b.Broadcast(testMsg{T: "after-leave"})

	select {
	case <-ch:
		t.Error("left member should not receive broadcasts")
	default:
	}
}
