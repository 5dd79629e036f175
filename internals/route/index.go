// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	visitRoute "kelasku_backend/internals/features/attendance/student_visits/route"
	brandRoute "kelasku_backend/internals/features/classroom/brands/route"
	groupRoute "kelasku_backend/internals/features/classroom/groups/route"
	studentRoute "kelasku_backend/internals/features/classroom/students/route"
	layoutRoute "kelasku_backend/internals/features/classroom/table_layouts/route"
	questionnaireRoute "kelasku_backend/internals/features/questionnaires/route"
	scoringRoute "kelasku_backend/internals/features/scoring/route"
	sessionAnswerRoute "kelasku_backend/internals/features/sessions/session_answers/route"
	sessionStudentRoute "kelasku_backend/internals/features/sessions/session_students/route"
	sessionRoute "kelasku_backend/internals/features/sessions/sessions/route"
	userRoute "kelasku_backend/internals/features/users/route"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan semua route aplikasi:
// /api/auth (tanpa token), /api/u (wajib token), /api/public (anonim).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up auth routes...")
	auth := app.Group("/api/auth")
	userRoute.AuthRoutes(auth, db)

	log.Println("[INFO] Setting up user routes...")
	u := app.Group("/api/u", authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))
	userRoute.AuthUserRoutes(u, db)
	brandRoute.BrandUserRoutes(u, db)
	groupRoute.GroupUserRoutes(u, db)
	studentRoute.StudentUserRoutes(u, db)
	layoutRoute.TableLayoutUserRoutes(u, db)
	questionnaireRoute.QuestionnaireUserRoutes(u, db)
	sessionRoute.SessionUserRoutes(u, db)
	sessionStudentRoute.SessionStudentUserRoutes(u, db)
	sessionAnswerRoute.SessionAnswerUserRoutes(u, db)
	visitRoute.StudentVisitUserRoutes(u, db)
	scoringRoute.ReportUserRoutes(u, db)

	log.Println("[INFO] Setting up public routes...")
	public := app.Group("/api/public")
	scoringRoute.ShowcasePublicRoutes(public, db)
}
