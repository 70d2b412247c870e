package promize_test

import (
	"context"
	"testing"

	promize "github.com/tdadadavid/Promize"
)

func TestNew_InvalidMode(t *testing.T) {
	_, err := promize.New(promize.WithMode(promize.Mode(9)))
	if err == nil {
		t.Error("invalid mode accepted")
	}
}

func TestContext_With(t *testing.T) {
	queue, err := promize.New(promize.WithMode(promize.ManualMode))
	if err != nil {
		t.Fatal(err)
		return
	}
	defer func() {
		if closeErr := queue.Close(); closeErr != nil {
			t.Error(closeErr)
		}
	}()

	if _, has := promize.TryFrom(context.Background()); has {
		t.Error("queue found in background context")
	}
	got := promize.From(queue.Context())
	if got != queue {
		t.Error("queue in context is not the queue")
	}

	executed := false
	if scheduleErr := promize.Schedule(queue.Context(), func() {
		executed = true
	}); scheduleErr != nil {
		t.Fatal(scheduleErr)
	}
	if executed {
		t.Error("callback executed inline")
	}
	if drainErr := queue.Drain(); drainErr != nil {
		t.Fatal(drainErr)
	}
	if !executed {
		t.Error("callback not executed")
	}
}

func TestFrom_Panics(t *testing.T) {
	defer func() {
		if recovered := recover(); recovered == nil {
			t.Error("From did not panic without queue")
		}
	}()
	promize.From(context.Background())
}
