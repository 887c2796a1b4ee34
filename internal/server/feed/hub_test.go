package feed

import (
	"testing"

	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/models"
)

func TestHub_BroadcastReachesAllSubscribers(t *testing.T) {
	h := NewHub()

	ch1, cancel1 := h.Subscribe()
	ch2, cancel2 := h.Subscribe()
	defer cancel1()
	defer cancel2()

	ev := models.ChangeEvent{Table: common.TableMoods, Op: models.OpInsert, Author: "cookie"}
	h.Broadcast(ev)

	for _, ch := range []<-chan models.ChangeEvent{ch1, ch2} {
		got := <-ch
		if got != ev {
			t.Fatalf("got %+v, want %+v", got, ev)
		}
	}
}

func TestHub_CancelRemovesSubscriber(t *testing.T) {
	h := NewHub()

	_, cancel := h.Subscribe()
	if h.Len() != 1 {
		t.Fatalf("want 1 subscriber, got %d", h.Len())
	}

	cancel()
	if h.Len() != 0 {
		t.Fatalf("want 0 subscribers, got %d", h.Len())
	}

	// Cancel must be idempotent.
	cancel()
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe()
	defer cancel()

	ev := models.ChangeEvent{Table: common.TableLetters, Op: models.OpInsert, Author: "bear"}
	for i := 0; i < subscriberBuffer+10; i++ {
		h.Broadcast(ev)
	}

	if len(ch) != subscriberBuffer {
		t.Fatalf("want %d buffered events, got %d", subscriberBuffer, len(ch))
	}
}

func TestHub_CancelledSubscriberNotBroadcastTo(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe()
	cancel()

	h.Broadcast(models.ChangeEvent{Table: common.TableAnswers, Op: models.OpUpdate, Author: "cookie"})

	if _, ok := <-ch; ok {
		t.Fatal("expected closed empty channel")
	}
}
