package shutdown

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHooksRunInReverseOrder(t *testing.T) {
	h := NewHandler(time.Second)

	var order []string
	h.OnShutdown(func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	h.OnShutdown(func(context.Context) error {
		order = append(order, "second")
		return nil
	})

	errCh := make(chan error, 1)
	go func() { errCh <- h.Wait() }()
	h.Trigger()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Wait: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return")
	}

	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("hook order = %v", order)
	}
}

func TestWaitReturnsLastHookError(t *testing.T) {
	h := NewHandler(time.Second)
	wantErr := errors.New("close failed")

	h.OnShutdown(func(context.Context) error { return wantErr })
	h.OnShutdown(func(context.Context) error { return nil })

	errCh := make(chan error, 1)
	go func() { errCh <- h.Wait() }()
	h.Trigger()

	if err := <-errCh; !errors.Is(err, wantErr) {
		t.Errorf("Wait = %v, want %v", err, wantErr)
	}

	select {
	case <-h.Done():
	default:
		t.Error("Done not closed after Wait")
	}
}

func TestTriggerIsIdempotent(t *testing.T) {
	h := NewHandler(time.Second)

	go h.Wait()
	h.Trigger()
	h.Trigger()

	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not complete")
	}
}
