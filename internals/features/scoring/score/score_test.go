package score

import "testing"

func TestWeight(t *testing.T) {
	cases := map[AnswerState]float64{
		StateNone:   0.0,
		StateGreen:  1.0,
		StateRed:    0.0,
		StateYellow: 0.5,
	}
	for state, want := range cases {
		if got := state.Weight(); got != want {
			t.Fatalf("Weight(%d) = %v, want %v", state, got, want)
		}
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		states []AnswerState
		want   Summary
	}{
		{
			name:   "green yellow red",
			states: []AnswerState{StateGreen, StateYellow, StateRed},
			want:   Summary{Score: 1.5, Count: 3, Efficiency: 50.0},
		},
		{
			name:   "empty answers no divide by zero",
			states: nil,
			want:   Summary{Score: 0, Count: 0, Efficiency: 0},
		},
		{
			name:   "none counts but scores zero",
			states: []AnswerState{StateGreen, StateNone},
			want:   Summary{Score: 1.0, Count: 2, Efficiency: 50.0},
		},
		{
			name:   "all green",
			states: []AnswerState{StateGreen, StateGreen},
			want:   Summary{Score: 2.0, Count: 2, Efficiency: 100.0},
		},
		{
			name:   "rounds to one decimal",
			states: []AnswerState{StateGreen, StateRed, StateRed}, // 1/3 = 33.333...
			want:   Summary{Score: 1.0, Count: 3, Efficiency: 33.3},
		},
		{
			name:   "rounds half up",
			states: []AnswerState{StateYellow, StateGreen, StateRed, StateRed}, // 1.5/4 = 37.5
			want:   Summary{Score: 1.5, Count: 4, Efficiency: 37.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.states); got != tt.want {
				t.Fatalf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSummaryAdd(t *testing.T) {
	hw := Summarize([]AnswerState{StateGreen, StateGreen})         // 2/2
	reg := Summarize([]AnswerState{StateRed, StateRed, StateRed})  // 0/3
	total := hw.Add(reg)
	if total.Score != 2.0 || total.Count != 5 {
		t.Fatalf("Add() pool = %+v, want score 2 count 5", total)
	}
	// satu pool: 2/5 = 40%, bukan rata-rata dari 100% dan 0%
	if total.Efficiency != 40.0 {
		t.Fatalf("Add() efficiency = %v, want 40.0", total.Efficiency)
	}

	empty := Summary{}
	if got := empty.Add(empty); got != (Summary{}) {
		t.Fatalf("Add() dua pool kosong = %+v, want zero", got)
	}
}

func TestValid(t *testing.T) {
	for _, s := range []AnswerState{StateNone, StateGreen, StateRed, StateYellow} {
		if !s.Valid() {
			t.Fatalf("state %d should be valid", s)
		}
	}
	if AnswerState(4).Valid() || AnswerState(-1).Valid() {
		t.Fatal("out-of-range state should be invalid")
	}
}
