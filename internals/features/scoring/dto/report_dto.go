// file: internals/features/scoring/dto/report_dto.go
package dto

import (
	"github.com/google/uuid"

	scoringService "kelasku_backend/internals/features/scoring/service"
)

/* =========================================================
   TOTAL RESULTS (rollup student → group → brand)
   ========================================================= */

type StudentResultRow struct {
	StudentID   uuid.UUID                    `json:"student_id"`
	StudentName string                       `json:"student_name"`
	Scores      scoringService.StudentScores `json:"scores"`
}

type GroupResultRow struct {
	GroupID   uuid.UUID                    `json:"group_id"`
	GroupName string                       `json:"group_name"`
	Scores    scoringService.StudentScores `json:"scores"`
	Students  []StudentResultRow           `json:"students"`
}

type BrandResultRow struct {
	BrandID   uuid.UUID                    `json:"brand_id"`
	BrandName string                       `json:"brand_name"`
	Scores    scoringService.StudentScores `json:"scores"`
	Groups    []GroupResultRow             `json:"groups"`
}

type TotalResultsResponse struct {
	Brands []BrandResultRow `json:"brands"`
}

/* =========================================================
   ATTENDANCE SUMMARY
   ========================================================= */

type AttendanceSummaryRow struct {
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`
	PresentCount int       `json:"present_count"`
	AbsentCount  int       `json:"absent_count"`
	PresenceRate float64   `json:"presence_rate"`
}
