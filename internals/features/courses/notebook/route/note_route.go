package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/notebook/controller"
)

func NotebookUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNoteController(db)

	notebook := user.Group("/notebook")
	notebook.Get("/", ctrl.List)
	notebook.Get("/class/:classId", ctrl.ListByClass)
	notebook.Get("/open/:noteId", ctrl.Open)
	notebook.Post("/new", ctrl.Create)
	notebook.Put("/edit/:noteId", ctrl.Edit)
	notebook.Delete("/delete/:noteId", ctrl.Delete)
}
