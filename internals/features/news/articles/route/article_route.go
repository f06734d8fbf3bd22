package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newshub_backend/internals/features/news/articles/controller"
)

func ArticleRoutes(api fiber.Router, db *gorm.DB) {
	articleCtrl := controller.NewArticleController(db)

	article := api.Group("/articles")
	article.Get("/", articleCtrl.GetAllArticles)
	article.Get("/:article_id", articleCtrl.GetArticleByID)
	article.Patch("/:article_id", articleCtrl.UpdateArticleVotes)
}
