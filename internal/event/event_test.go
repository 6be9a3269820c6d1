package event

import "testing"

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func TestDispatcherDeliversByType(t *testing.T) {
	d := NewDispatcher()
	waves := &recorder{}
	all := &recorder{}
	d.Subscribe(WaveEnded, waves)
	d.Subscribe(WaveEnded, all)
	d.Subscribe(EnemyKilled, all)

	d.Dispatch(Event{Type: WaveEnded, Data: 1})
	d.Dispatch(Event{Type: EnemyKilled, Data: 25})
	d.Dispatch(Event{Type: GameOver})

	if len(waves.events) != 1 {
		t.Errorf("Expected 1 wave event, got %d", len(waves.events))
	}
	if len(all.events) != 2 || all.events[1].Data != 25 {
		t.Errorf("Expected 2 events ending with reward 25, got %+v", all.events)
	}
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(LifeLost, r)
	d.Unsubscribe(LifeLost, r)

	d.Dispatch(Event{Type: LifeLost})
	if len(r.events) != 0 {
		t.Errorf("Expected no events after unsubscribe, got %d", len(r.events))
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	count := 0
	d.Subscribe(TowerPlaced, ListenerFunc(func(Event) { count++ }))
	d.Dispatch(Event{Type: TowerPlaced})
	if count != 1 {
		t.Errorf("Expected 1 call, got %d", count)
	}
}
