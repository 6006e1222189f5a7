package event

import (
	"testing"

	"github.com/dshills/inkstorm/internal/input/pointer"
)

func TestCaptureRunsBeforeTarget(t *testing.T) {
	bus := NewBus()
	var order []string

	bus.Subscribe(func(pointer.Event, *Propagation) {
		order = append(order, "target")
	})
	bus.SubscribeCapture(func(pointer.Event, *Propagation) {
		order = append(order, "capture")
	})

	bus.Dispatch(pointer.Event{Phase: pointer.PhaseMove})

	if len(order) != 2 || order[0] != "capture" || order[1] != "target" {
		t.Errorf("order = %v, want [capture target]", order)
	}
}

func TestStopInCaptureBlocksTarget(t *testing.T) {
	bus := NewBus()
	targetRan := false

	bus.SubscribeCapture(func(_ pointer.Event, prop *Propagation) {
		prop.Stop()
	})
	bus.Subscribe(func(pointer.Event, *Propagation) {
		targetRan = true
	})

	consumed := bus.Dispatch(pointer.Event{Phase: pointer.PhaseWheel})

	if !consumed {
		t.Error("Dispatch() = false, want true")
	}
	if targetRan {
		t.Error("target listener ran after capture stop")
	}
}

func TestListenersRunInRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var order []int

	for i := 0; i < 3; i++ {
		i := i
		bus.SubscribeCapture(func(pointer.Event, *Propagation) {
			order = append(order, i)
		})
	}

	bus.Dispatch(pointer.Event{})

	for i, got := range order {
		if got != i {
			t.Fatalf("order = %v, want [0 1 2]", order)
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()
	ran := false

	token := bus.Subscribe(func(pointer.Event, *Propagation) {
		ran = true
	})
	bus.Unsubscribe(token)

	bus.Dispatch(pointer.Event{})

	if ran {
		t.Error("unsubscribed listener ran")
	}
}

func TestDelegatedDispatchReturnsFalse(t *testing.T) {
	bus := NewBus()
	bus.Subscribe(func(pointer.Event, *Propagation) {})

	if bus.Dispatch(pointer.Event{}) {
		t.Error("Dispatch() = true, want false when nothing stops propagation")
	}
}

func TestPanickingListenerIsRecovered(t *testing.T) {
	bus := NewBus()
	var panicked any
	bus.PanicHandler = func(_ pointer.Event, v any) {
		panicked = v
	}

	bus.SubscribeCapture(func(pointer.Event, *Propagation) {
		panic("boom")
	})
	afterRan := false
	bus.Subscribe(func(pointer.Event, *Propagation) {
		afterRan = true
	})

	bus.Dispatch(pointer.Event{})

	if panicked != "boom" {
		t.Errorf("panic value = %v, want boom", panicked)
	}
	if !afterRan {
		t.Error("listener after panic did not run")
	}
}
