package middleware

import (
	"context"
	"testing"
	"time"

	"stayboard/internal/app/queries"
)

type sleepQuery struct{}

func (sleepQuery) Key() string { return "test.sleep" }

type sleepHandler struct{}

func (sleepHandler) Handle(ctx context.Context, _ sleepQuery) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(50 * time.Millisecond):
		return "done", nil
	}
}

func newSleepBus() queries.Bus {
	bus := queries.NewInMemoryBus()
	queries.RegisterHandler[sleepQuery, string](bus, sleepQuery{}.Key(), sleepHandler{})
	return bus
}

func TestTimeoutCancelsSlowQuery(t *testing.T) {
	bus := ChainQueries(newSleepBus(), Timeout(5*time.Millisecond))
	if _, err := queries.Ask[sleepQuery, string](context.Background(), bus, sleepQuery{}); err == nil {
		t.Fatal("expected deadline error")
	}
}

func TestTimeoutDisabledPassesThrough(t *testing.T) {
	bus := ChainQueries(newSleepBus(), Timeout(0), Logging(nil))
	got, err := queries.Ask[sleepQuery, string](context.Background(), bus, sleepQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if got != "done" {
		t.Errorf("expected pass-through result, got %q", got)
	}
}
