package bridge

import "testing"

func TestFanoutDeliversInOrder(t *testing.T) {
	var got []string
	a := SinkFunc(func(e Event) { got = append(got, "a:"+e.Name) })
	b := SinkFunc(func(e Event) { got = append(got, "b:"+e.Name) })

	Fanout{a, nil, b}.Notify(Event{Name: EventHotkey})

	if len(got) != 2 || got[0] != "a:pill:hotkey" || got[1] != "b:pill:hotkey" {
		t.Fatalf("unexpected deliveries %v", got)
	}
}
