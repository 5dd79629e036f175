// file: internals/features/classroom/students/controller/student_controller_test.go
package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	helper "kelasku_backend/internals/helpers"
)

func newStudentTestApp(t *testing.T, userID uuid.UUID) (*fiber.App, sqlmock.Sqlmock) {
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
	ctl := &StudentController{DB: gdb}
	app.Post("/students", ctl.Create)
	return app, mock
}

// Group milik user lain harus 404, bukan bocor lewat FK.
func TestStudentCreateForeignGroupNotFound(t *testing.T) {
	app, mock := newStudentTestApp(t, uuid.New())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "groups"`).
		WillReturnRows(sqlmock.NewRows([]string{"group_id"}))
	mock.ExpectRollback()

	body := fmt.Sprintf(`{"student_full_name":"Citra","student_group_id":%q,"student_brand_id":%q}`,
		uuid.New().String(), uuid.New().String())
	req := httptest.NewRequest("POST", "/students", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var out helper.ErrorResponse
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode: %v (%s)", err, raw)
	}
	if out.ErrorCode != "NOT_FOUND" {
		t.Errorf("error_code = %q, want NOT_FOUND", out.ErrorCode)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
