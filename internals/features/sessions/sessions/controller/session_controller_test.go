// file: internals/features/sessions/sessions/controller/session_controller_test.go
package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	sessionDTO "kelasku_backend/internals/features/sessions/sessions/dto"
	sessionModel "kelasku_backend/internals/features/sessions/sessions/model"
)

func newSessionTestApp(t *testing.T, userID uuid.UUID) (*fiber.App, sqlmock.Sqlmock) {
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
	ctl := &SessionController{DB: gdb}
	app.Put("/sessions/:id", ctl.Update)
	return app, mock
}

func sessionRow(sessionID, userID uuid.UUID, state sessionModel.SessionState, qnID *uuid.UUID) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"session_id", "session_user_id", "session_name",
		"session_table_layout_id", "session_questionnaire_id",
		"session_state", "session_created_at", "session_updated_at",
	})
	var qn interface{}
	if qnID != nil {
		qn = qnID.String()
	}
	rows.AddRow(sessionID.String(), userID.String(), "Kelas Pagi",
		uuid.New().String(), qn, int16(state), time.Now(), time.Now())
	return rows
}

// ===================== CLEAR QUESTIONNAIRE =====================

// session_questionnaire_clear melepas questionnaire (dan pointer
// pertanyaannya) dari sesi regular.
func TestSessionUpdateClearQuestionnaire(t *testing.T) {
	userID := uuid.New()
	sessionID := uuid.New()
	qnID := uuid.New()

	app, mock := newSessionTestApp(t, userID)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "sessions"`).
		WillReturnRows(sessionRow(sessionID, userID, sessionModel.SessionStateRegular, &qnID))
	mock.ExpectExec(`UPDATE "sessions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("PUT", "/sessions/"+sessionID.String(),
		strings.NewReader(`{"session_questionnaire_clear":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want 200 (%s)", resp.StatusCode, raw)
	}

	var out struct {
		Success bool                       `json:"success"`
		Data    sessionDTO.SessionResponse `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode: %v (%s)", err, raw)
	}
	if out.Data.SessionQuestionnaireID != nil {
		t.Errorf("session_questionnaire_id masih %v, want nil", out.Data.SessionQuestionnaireID)
	}
	if out.Data.SessionCurrentQuestionID != nil {
		t.Errorf("session_current_question_id masih terisi, want nil")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// Sesi homework wajib punya questionnaire, clear harus ditolak.
func TestSessionUpdateClearQuestionnaireOnHomework(t *testing.T) {
	userID := uuid.New()
	sessionID := uuid.New()
	qnID := uuid.New()

	app, mock := newSessionTestApp(t, userID)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "sessions"`).
		WillReturnRows(sessionRow(sessionID, userID, sessionModel.SessionStateHomework, &qnID))
	mock.ExpectRollback()

	req := httptest.NewRequest("PUT", "/sessions/"+sessionID.String(),
		strings.NewReader(`{"session_questionnaire_clear":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want 400 (%s)", resp.StatusCode, raw)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
