// file: internals/features/scoring/service/score_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/scoring/score"
)

// StudentScores: ringkasan skor satu student (homework, regular, dan gabungan).
type StudentScores struct {
	Homework score.Summary `json:"homework"`
	Regular  score.Summary `json:"regular"`
	Total    score.Summary `json:"total"`
}

// Add menggabungkan dua ringkasan per-pool (dipakai rollup group/brand).
func (s StudentScores) Add(o StudentScores) StudentScores {
	return StudentScores{
		Homework: s.Homework.Add(o.Homework),
		Regular:  s.Regular.Add(o.Regular),
		Total:    s.Total.Add(o.Total),
	}
}

type stateRow struct {
	StudentID uuid.UUID
	State     score.AnswerState
}

// HomeworkStates mengambil semua state jawaban homework per student
// (satu query batch untuk banyak student sekaligus, bukan N+1).
func HomeworkStates(db *gorm.DB, userID uuid.UUID, studentIDs []uuid.UUID) (map[uuid.UUID][]score.AnswerState, error) {
	if len(studentIDs) == 0 {
		return map[uuid.UUID][]score.AnswerState{}, nil
	}
	var rows []stateRow
	if err := db.
		Table("session_homework_answers AS a").
		Select("s.session_homework_student_student_id AS student_id, a.session_homework_answer_state AS state").
		Joins("JOIN session_homework_students AS s ON s.session_homework_student_id = a.session_homework_answer_session_homework_student_id").
		Where("a.session_homework_answer_user_id = ?", userID).
		Where("s.session_homework_student_student_id IN ?", studentIDs).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return groupStates(rows), nil
}

// RegularStates: idem untuk jawaban sesi regular.
func RegularStates(db *gorm.DB, userID uuid.UUID, studentIDs []uuid.UUID) (map[uuid.UUID][]score.AnswerState, error) {
	if len(studentIDs) == 0 {
		return map[uuid.UUID][]score.AnswerState{}, nil
	}
	var rows []stateRow
	if err := db.
		Table("session_regular_answers AS a").
		Select("s.session_regular_student_student_id AS student_id, a.session_regular_answer_state AS state").
		Joins("JOIN session_regular_students AS s ON s.session_regular_student_id = a.session_regular_answer_session_regular_student_id").
		Where("a.session_regular_answer_user_id = ?", userID).
		Where("s.session_regular_student_student_id IN ?", studentIDs).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return groupStates(rows), nil
}

// SummariesByStudent menghitung {homework, regular, total} untuk tiap student id.
// Student tanpa jawaban tetap dapat entry nol (efficiency 0, bukan NaN).
func SummariesByStudent(db *gorm.DB, userID uuid.UUID, studentIDs []uuid.UUID) (map[uuid.UUID]StudentScores, error) {
	hw, err := HomeworkStates(db, userID, studentIDs)
	if err != nil {
		return nil, err
	}
	reg, err := RegularStates(db, userID, studentIDs)
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]StudentScores, len(studentIDs))
	for _, id := range studentIDs {
		h := score.Summarize(hw[id])
		r := score.Summarize(reg[id])
		out[id] = StudentScores{
			Homework: h,
			Regular:  r,
			Total:    h.Add(r),
		}
	}
	return out, nil
}

func groupStates(rows []stateRow) map[uuid.UUID][]score.AnswerState {
	out := make(map[uuid.UUID][]score.AnswerState)
	for _, r := range rows {
		out[r.StudentID] = append(out[r.StudentID], r.State)
	}
	return out
}
