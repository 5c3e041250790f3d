package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/classes/controller"
)

func ClassUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassUserController(db)

	class := user.Group("/class")
	class.Post("/get-answer", ctrl.GetAnswer)
	class.Post("/mark-watched", ctrl.MarkWatched)
	class.Post("/remove-watched", ctrl.RemoveWatched)
}

func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassAdminController(db)

	classes := admin.Group("/classes")
	classes.Get("/by-module/:moduleId", ctrl.ListByModule)
	classes.Post("/video", ctrl.CreateVideo)
	classes.Post("/questionnaire", ctrl.CreateQuestionnaire)
	classes.Put("/video/:id", ctrl.UpdateVideo)
	classes.Put("/questionnaire/:id", ctrl.UpdateQuestionnaire)
	classes.Post("/move", ctrl.Move)
	classes.Delete("/", ctrl.Delete)
}
