package flappy

import (
	"errors"
	"testing"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from    Phase
		trigger Trigger
		want    Phase
		legal   bool
	}{
		{PhaseStart, TriggerFlap, PhasePlaying, true},
		{PhaseStart, TriggerTick, PhaseStart, false},
		{PhaseStart, TriggerCrash, PhaseStart, false},
		{PhaseStart, TriggerRestart, PhaseStart, false},

		{PhasePlaying, TriggerFlap, PhasePlaying, true},
		{PhasePlaying, TriggerTick, PhasePlaying, true},
		{PhasePlaying, TriggerCrash, PhaseGameOver, true},
		{PhasePlaying, TriggerRestart, PhasePlaying, false},

		{PhaseGameOver, TriggerFlap, PhaseGameOver, false},
		{PhaseGameOver, TriggerTick, PhaseGameOver, false},
		{PhaseGameOver, TriggerCrash, PhaseGameOver, false},
		{PhaseGameOver, TriggerRestart, PhaseStart, true},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.trigger.String(), func(t *testing.T) {
			got, err := Transition(tt.from, tt.trigger)
			if got != tt.want {
				t.Errorf("Transition = %s, expected %s", got, tt.want)
			}
			if tt.legal && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.legal && !errors.Is(err, ErrIllegalTransition) {
				t.Errorf("expected ErrIllegalTransition, got %v", err)
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	names := map[Phase]string{
		PhaseStart:    "START",
		PhasePlaying:  "PLAYING",
		PhaseGameOver: "GAME_OVER",
		Phase(9):      "Phase(9)",
	}
	for p, want := range names {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, expected %q", int(p), p.String(), want)
		}
	}
}
