// file: internals/features/scoring/score/score.go
package score

import "math"

// AnswerState: nilai jawaban per pertanyaan (dibagikan regular & homework).
type AnswerState int16

const (
	StateNone   AnswerState = 0
	StateGreen  AnswerState = 1
	StateRed    AnswerState = 2
	StateYellow AnswerState = 3
)

// Valid memeriksa apakah nilai state dikenal.
func (s AnswerState) Valid() bool {
	return s >= StateNone && s <= StateYellow
}

// Weight: Green=1.0, Yellow=0.5, Red/None=0.0
func (s AnswerState) Weight() float64 {
	switch s {
	case StateGreen:
		return 1.0
	case StateYellow:
		return 0.5
	default:
		return 0.0
	}
}

// Summary adalah hasil agregasi satu kumpulan jawaban.
// Efficiency = round(score/count*100, 1 desimal); 0 kalau count 0.
type Summary struct {
	Score      float64 `json:"score"`
	Count      int     `json:"count"`
	Efficiency float64 `json:"efficiency"`
}

// Summarize menghitung skor berbobot satu kumpulan jawaban.
// Satu-satunya sumber kebenaran; dipakai list student, report, dan showcase.
func Summarize(states []AnswerState) Summary {
	s := Summary{}
	for _, st := range states {
		s.Score += st.Weight()
	}
	s.Count = len(states)
	s.Efficiency = efficiency(s.Score, s.Count)
	return s
}

// Add menggabungkan dua kumpulan menjadi satu pool
// (total = homework + regular dihitung sebagai satu pool, bukan rata-rata dari rata-rata).
func (s Summary) Add(other Summary) Summary {
	out := Summary{
		Score: s.Score + other.Score,
		Count: s.Count + other.Count,
	}
	out.Efficiency = efficiency(out.Score, out.Count)
	return out
}

func efficiency(score float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return math.Round(score/float64(count)*1000) / 10
}
