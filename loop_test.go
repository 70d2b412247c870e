package promize_test

import (
	"testing"

	promize "github.com/tdadadavid/Promize"
)

func TestLoop_ScheduleFIFO(t *testing.T) {
	queue, err := promize.New()
	if err != nil {
		t.Fatal(err)
		return
	}
	ch := make(chan int, 3)
	for i := 0; i < 3; i++ {
		if scheduleErr := queue.Schedule(func() {
			ch <- i
		}); scheduleErr != nil {
			t.Fatal(scheduleErr)
		}
	}
	if drainErr := queue.Drain(); drainErr != nil {
		t.Fatal(drainErr)
	}
	for want := 0; want < 3; want++ {
		if got := <-ch; got != want {
			t.Errorf("fifo broken: got %d want %d", got, want)
		}
	}
	if closeErr := queue.Close(); closeErr != nil {
		t.Error(closeErr)
	}
}

func TestLoop_ScheduleAfterClose(t *testing.T) {
	queue, err := promize.New()
	if err != nil {
		t.Fatal(err)
		return
	}
	if closeErr := queue.Close(); closeErr != nil {
		t.Fatal(closeErr)
	}
	scheduleErr := queue.Schedule(func() {})
	if !promize.IsClosed(scheduleErr) {
		t.Errorf("want ErrClosed, got %v", scheduleErr)
	}
	if queue.Running() {
		t.Error("closed queue still running")
	}
}

func TestLoop_CloseTwice(t *testing.T) {
	queue, err := promize.New()
	if err != nil {
		t.Fatal(err)
		return
	}
	if closeErr := queue.Close(); closeErr != nil {
		t.Fatal(closeErr)
	}
	if closeErr := queue.Close(); closeErr == nil {
		t.Error("second close did not fail")
	}
}

func TestLoop_PanicCallback(t *testing.T) {
	queue, err := promize.New()
	if err != nil {
		t.Fatal(err)
		return
	}
	ch := make(chan int, 1)
	if scheduleErr := queue.Schedule(func() {
		panic("poisoned callback")
	}); scheduleErr != nil {
		t.Fatal(scheduleErr)
	}
	if scheduleErr := queue.Schedule(func() {
		ch <- 1
	}); scheduleErr != nil {
		t.Fatal(scheduleErr)
	}
	if drainErr := queue.Drain(); drainErr != nil {
		t.Fatal(drainErr)
	}
	if got := <-ch; got != 1 {
		t.Error("callback after panic not executed")
	}
	if closeErr := queue.Close(); closeErr != nil {
		t.Error(closeErr)
	}
}

func TestLoop_NilCallback(t *testing.T) {
	queue, err := promize.New()
	if err != nil {
		t.Fatal(err)
		return
	}
	defer func() {
		if closeErr := queue.Close(); closeErr != nil {
			t.Error(closeErr)
		}
	}()
	if scheduleErr := queue.Schedule(nil); scheduleErr == nil {
		t.Error("nil callback accepted")
	}
}
