// file: internals/features/sessions/session_answers/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	saController "kelasku_backend/internals/features/sessions/session_answers/controller"
)

/*
User routes: jawaban per pertanyaan (upsert, bukan append)
Mount contoh: SessionAnswerUserRoutes(app.Group("/api/u"), db)
*/
func SessionAnswerUserRoutes(r fiber.Router, db *gorm.DB) {
	regular := &saController.SessionRegularAnswerController{DB: db}
	reg := r.Group("/session-regular-answers")
	reg.Put("/", regular.Upsert)                // PUT    /api/u/session-regular-answers
	reg.Get("/", regular.ListBySessionStudent)  // GET    /api/u/session-regular-answers?session_regular_student_id=
	reg.Delete("/:id", regular.Delete)          // DELETE /api/u/session-regular-answers/:id

	homework := &saController.SessionHomeworkAnswerController{DB: db}
	hw := r.Group("/session-homework-answers")
	hw.Put("/", homework.Upsert)                // PUT    /api/u/session-homework-answers
	hw.Get("/", homework.ListBySessionStudent)  // GET    /api/u/session-homework-answers?session_homework_student_id=
	hw.Delete("/:id", homework.Delete)          // DELETE /api/u/session-homework-answers/:id
}
