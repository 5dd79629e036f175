// file: internals/features/scoring/service/score_service_test.go
package service

import (
	"testing"

	"kelasku_backend/internals/features/scoring/score"
)

// Rollup level group/brand harus menjumlahkan pool (score & count) lalu
// menghitung ulang efficiency, bukan merata-ratakan efficiency anak.
func TestStudentScoresAddPoolsNotAverages(t *testing.T) {
	s1 := StudentScores{
		Homework: score.Summarize([]score.AnswerState{score.StateGreen, score.StateGreen}), // 2/2 = 100%
	}
	s2 := StudentScores{
		Homework: score.Summarize([]score.AnswerState{score.StateRed, score.StateRed, score.StateRed, score.StateGreen}), // 1/4 = 25%
	}
	s1.Total = s1.Homework
	s2.Total = s2.Homework

	got := s1.Add(s2)

	// pooled: 3 poin dari 6 jawaban = 50%, bukan (100+25)/2 = 62.5%
	if got.Homework.Count != 6 {
		t.Errorf("Count = %d, want 6", got.Homework.Count)
	}
	if got.Homework.Score != 3 {
		t.Errorf("Score = %v, want 3", got.Homework.Score)
	}
	if got.Homework.Efficiency != 50 {
		t.Errorf("Efficiency = %v, want 50", got.Homework.Efficiency)
	}
	if got.Total.Efficiency != 50 {
		t.Errorf("Total.Efficiency = %v, want 50", got.Total.Efficiency)
	}
}

func TestStudentScoresAddZeroIdentity(t *testing.T) {
	s := StudentScores{
		Regular: score.Summarize([]score.AnswerState{score.StateYellow}),
	}
	got := s.Add(StudentScores{})
	if got.Regular != s.Regular {
		t.Errorf("adding zero scores changed the summary: %+v", got.Regular)
	}
}
