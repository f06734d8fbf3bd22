package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newshub_backend/internals/features/news/comments/controller"
)

func CommentRoutes(api fiber.Router, db *gorm.DB) {
	commentCtrl := controller.NewCommentController(db)

	api.Get("/articles/:article_id/comments", commentCtrl.GetCommentsByArticle)
	api.Post("/articles/:article_id/comments", commentCtrl.CreateComment)
	api.Delete("/comments/:comment_id", commentCtrl.DeleteComment)
}
