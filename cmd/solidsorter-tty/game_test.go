package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// fakeEventSource 无限产生按键事件
type fakeEventSource struct{}

func (fakeEventSource) PollEvent() tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
}

// closedEventSource 模拟已关闭的终端
type closedEventSource struct{}

func (closedEventSource) PollEvent() tcell.Event {
	return nil
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	// 缓冲区很快被填满，没有读取方
	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		pollEvents(fakeEventSource{}, events, done)
		close(finished)
	}()

	close(done)
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("pollEvents still blocked after done was closed")
	}
}

func TestPollEventsClosesOnNilEvent(t *testing.T) {
	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	defer close(done)

	go pollEvents(closedEventSource{}, events, done)

	select {
	case _, ok := <-events:
		if ok {
			t.Error("expected events channel to be closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("events channel was not closed")
	}
}
