package fanout

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAll_OrderIsDispatchOrderNotCompletionOrder(t *testing.T) {
	// Later tasks finish first; outcomes must still line up with dispatch order.
	tasks := []Task[int]{
		func(context.Context) (int, error) {
			time.Sleep(30 * time.Millisecond)
			return 1, nil
		},
		func(context.Context) (int, error) {
			time.Sleep(10 * time.Millisecond)
			return 2, nil
		},
		func(context.Context) (int, error) {
			return 3, nil
		},
	}

	outcomes := All(context.Background(), tasks)

	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	for i, want := range []int{1, 2, 3} {
		if outcomes[i].Err != nil {
			t.Fatalf("outcome %d: unexpected error %v", i, outcomes[i].Err)
		}
		if outcomes[i].Value != want {
			t.Errorf("outcome %d = %d, want %d", i, outcomes[i].Value, want)
		}
	}
}

func TestAll_FailureDoesNotShortCircuit(t *testing.T) {
	boom := errors.New("boom")
	tasks := []Task[string]{
		func(context.Context) (string, error) { return "", boom },
		func(context.Context) (string, error) { return "ok", nil },
	}

	outcomes := All(context.Background(), tasks)

	if !errors.Is(outcomes[0].Err, boom) {
		t.Errorf("outcome 0 error = %v, want boom", outcomes[0].Err)
	}
	if outcomes[1].Err != nil || outcomes[1].Value != "ok" {
		t.Errorf("outcome 1 = %+v, want ok", outcomes[1])
	}
}

func TestAll_PanicSettlesAsError(t *testing.T) {
	tasks := []Task[int]{
		func(context.Context) (int, error) { panic("bad task") },
		func(context.Context) (int, error) { return 7, nil },
	}

	outcomes := All(context.Background(), tasks)

	if outcomes[0].Err == nil {
		t.Error("panicking task must settle with an error")
	}
	if outcomes[1].Value != 7 {
		t.Errorf("sibling task corrupted: %+v", outcomes[1])
	}
}

func TestAll_Empty(t *testing.T) {
	outcomes := All(context.Background(), []Task[int]{})
	if len(outcomes) != 0 {
		t.Fatalf("expected no outcomes, got %d", len(outcomes))
	}
}
