// file: internals/features/classroom/brands/controller/brand_controller_test.go
package controller

import (
	"encoding/json"
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

func newBrandTestApp(t *testing.T, userID uuid.UUID) (*fiber.App, sqlmock.Sqlmock) {
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
	ctl := &BrandController{DB: gdb}
	app.Post("/brands", ctl.Create)
	return app, mock
}

// Nama brand unik per user: user yang sama kena 409, user lain bebas
// memakai nama yang sama.
func TestBrandCreateDuplicateNamePerUser(t *testing.T) {
	t.Run("same user conflicts", func(t *testing.T) {
		app, mock := newBrandTestApp(t, uuid.New())

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "brands"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		req := httptest.NewRequest("POST", "/brands", strings.NewReader(`{"brand_name":"Alpha"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != fiber.StatusConflict {
			t.Fatalf("status = %d, want 409", resp.StatusCode)
		}

		var out helper.ErrorResponse
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode: %v (%s)", err, body)
		}
		if out.ErrorCode != "CONFLICT" {
			t.Errorf("error_code = %q, want CONFLICT", out.ErrorCode)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("other user with same name is fine", func(t *testing.T) {
		app, mock := newBrandTestApp(t, uuid.New())

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "brands"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`INSERT INTO "brands"`).
			WillReturnRows(sqlmock.NewRows([]string{"brand_id"}).AddRow(uuid.New().String()))
		mock.ExpectCommit()

		req := httptest.NewRequest("POST", "/brands", strings.NewReader(`{"brand_name":"Alpha"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("status = %d, want 201", resp.StatusCode)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}
