package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/comments/controller"
)

func CommentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCommentController(db)

	class := user.Group("/class")
	class.Get("/:classId/comments", ctrl.ListByClass)
	class.Post("/new-comment", ctrl.NewComment)
	class.Post("/add-reply", ctrl.AddReply)
	class.Post("/delete-comment", ctrl.DeleteComment)
	class.Post("/remove-reply", ctrl.DeleteReply)
}
