// file: internals/features/scoring/controller/report_controller_test.go
package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	reportDTO "kelasku_backend/internals/features/scoring/dto"
)

func newReportTestApp(t *testing.T, userID uuid.UUID) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB, PreferSimpleProtocol: true}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})
	ctl := &ReportController{DB: gdb}
	app.Get("/reports/total-results", ctl.TotalResults)
	return app, mock
}

// Dua student segroup tapi beda brand: skor masing-masing harus jatuh ke
// brand milik student itu sendiri, bukan ke brand student pertama di group.
func TestTotalResultsSplitsSharedGroupAcrossBrands(t *testing.T) {
	userID := uuid.New()
	groupID := uuid.New()
	brandA := uuid.New()
	brandB := uuid.New()
	studentA := uuid.New() // brand Alpha, tanpa jawaban
	studentB := uuid.New() // brand Beta, satu jawaban hijau

	app, mock := newReportTestApp(t, userID)

	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"student_id", "student_user_id", "student_group_id", "student_brand_id", "student_full_name",
		}).
			AddRow(studentA.String(), userID.String(), groupID.String(), brandA.String(), "Andi").
			AddRow(studentB.String(), userID.String(), groupID.String(), brandB.String(), "Budi"))

	mock.ExpectQuery(`FROM session_homework_answers AS a`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "state"}))

	mock.ExpectQuery(`FROM session_regular_answers AS a`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "state"}).
			AddRow(studentB.String(), 1)) // hijau

	mock.ExpectQuery(`SELECT \* FROM "groups"`).
		WillReturnRows(sqlmock.NewRows([]string{"group_id", "group_user_id", "group_name"}).
			AddRow(groupID.String(), userID.String(), "Kelas 1A"))

	mock.ExpectQuery(`SELECT \* FROM "brands"`).
		WillReturnRows(sqlmock.NewRows([]string{"brand_id", "brand_user_id", "brand_name"}).
			AddRow(brandA.String(), userID.String(), "Alpha").
			AddRow(brandB.String(), userID.String(), "Beta"))

	resp, err := app.Test(httptest.NewRequest("GET", "/reports/total-results", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var envelope struct {
		Success bool                           `json:"success"`
		Data    reportDTO.TotalResultsResponse `json:"data"`
	}
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("decode: %v (%s)", err, body)
	}

	byName := map[string]reportDTO.BrandResultRow{}
	for _, b := range envelope.Data.Brands {
		byName[b.BrandName] = b
	}

	beta, ok := byName["Beta"]
	if !ok {
		t.Fatalf("brand Beta tidak ada di response: %s", body)
	}
	if beta.Scores.Total.Score != 1 || beta.Scores.Total.Count != 1 {
		t.Errorf("Beta total = {score %v, count %d}, want {1, 1}",
			beta.Scores.Total.Score, beta.Scores.Total.Count)
	}
	if len(beta.Groups) != 1 || len(beta.Groups[0].Students) != 1 ||
		beta.Groups[0].Students[0].StudentID != studentB {
		t.Errorf("group Beta harus hanya memuat student Budi: %+v", beta.Groups)
	}

	alpha, ok := byName["Alpha"]
	if !ok {
		t.Fatalf("brand Alpha tidak ada di response: %s", body)
	}
	if alpha.Scores.Total.Score != 0 || alpha.Scores.Total.Count != 0 {
		t.Errorf("Alpha total = {score %v, count %d}, want {0, 0}",
			alpha.Scores.Total.Score, alpha.Scores.Total.Count)
	}
	if len(alpha.Groups) != 1 || len(alpha.Groups[0].Students) != 1 ||
		alpha.Groups[0].Students[0].StudentID != studentA {
		t.Errorf("group Alpha harus hanya memuat student Andi: %+v", alpha.Groups)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
