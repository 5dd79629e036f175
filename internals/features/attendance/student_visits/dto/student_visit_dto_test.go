// file: internals/features/attendance/student_visits/dto/student_visit_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
)

func TestResolveTargets(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	tests := []struct {
		name       string
		candidates []uuid.UUID
		excluded   []uuid.UUID
		want       []uuid.UUID
	}{
		{"no exclusions", []uuid.UUID{a, b}, nil, []uuid.UUID{a, b}},
		{"exclusion removes", []uuid.UUID{a, b, c}, []uuid.UUID{b}, []uuid.UUID{a, c}},
		{"duplicates collapsed", []uuid.UUID{a, a, b}, nil, []uuid.UUID{a, b}},
		{"all excluded", []uuid.UUID{a}, []uuid.UUID{a}, []uuid.UUID{}},
		{"excluded id not in candidates is a no-op", []uuid.UUID{a}, []uuid.UUID{b}, []uuid.UUID{a}},
		{"empty candidates", nil, []uuid.UUID{a}, []uuid.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTargets(tt.candidates, tt.excluded)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCreateStudentVisitRequestNormalize(t *testing.T) {
	empty := "   "
	req := CreateStudentVisitRequest{
		VisitDate: " 2026-08-30 ",
		Notes:     &empty,
	}
	req.Normalize()
	if req.VisitDate != "2026-08-30" {
		t.Errorf("VisitDate = %q", req.VisitDate)
	}
	if req.Notes != nil {
		t.Errorf("blank notes should normalize to nil, got %q", *req.Notes)
	}

	note := " hadir terlambat "
	req = CreateStudentVisitRequest{VisitDate: "2026-08-30", Notes: &note}
	req.Normalize()
	if req.Notes == nil || *req.Notes != "hadir terlambat" {
		t.Errorf("Notes = %v", req.Notes)
	}
}
