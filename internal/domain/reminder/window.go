package reminder

import "time"

// Window é um intervalo fechado [From, To].
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// ComputeTriggerWindow devolve a janela de horários de início que devem
// receber o lembrete de antecedência lead no instante now.
func ComputeTriggerWindow(now time.Time, lead, tolerance time.Duration) Window {
	target := now.Add(lead)
	return Window{
		From: target.Add(-tolerance),
		To:   target.Add(tolerance),
	}
}
