// file: internals/features/questionnaires/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qController "kelasku_backend/internals/features/questionnaires/controller"
)

func QuestionnaireUserRoutes(r fiber.Router, db *gorm.DB) {
	qnCtl := &qController.QuestionnaireController{DB: db}
	questionnaires := r.Group("/questionnaires")
	questionnaires.Post("/", qnCtl.Create)      // POST   /api/u/questionnaires
	questionnaires.Get("/", qnCtl.List)         // GET    /api/u/questionnaires
	questionnaires.Get("/:id", qnCtl.GetByID)   // GET    /api/u/questionnaires/:id
	questionnaires.Put("/:id", qnCtl.Update)    // PUT    /api/u/questionnaires/:id
	questionnaires.Delete("/:id", qnCtl.Delete) // DELETE /api/u/questionnaires/:id (soft delete)

	qCtl := &qController.QuestionController{DB: db}
	questions := r.Group("/questions")
	questions.Post("/", qCtl.Create)      // POST   /api/u/questions
	questions.Get("/", qCtl.List)         // GET    /api/u/questions?questionnaire_id=
	questions.Get("/:id", qCtl.GetByID)   // GET    /api/u/questions/:id
	questions.Put("/:id", qCtl.Update)    // PUT    /api/u/questions/:id
	questions.Delete("/:id", qCtl.Delete) // DELETE /api/u/questions/:id (soft delete)
}
