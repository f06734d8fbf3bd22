package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newshub_backend/internals/constants"
	articleRoute "newshub_backend/internals/features/news/articles/route"
	commentRoute "newshub_backend/internals/features/news/comments/route"
	topicRoute "newshub_backend/internals/features/news/topics/route"
	userRoute "newshub_backend/internals/features/news/users/route"
	"newshub_backend/internals/helpers/apperror"
)

// SetupRoutes mounts every feature under /api and installs the catch-all.
// Must run after the middleware stack and before Listen.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// Static endpoint descriptor.
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"endpoints": constants.Endpoints})
	})

	log.Println("[INFO] Setting up TopicRoutes...")
	topicRoute.TopicRoutes(api, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(api, db)

	log.Println("[INFO] Setting up ArticleRoutes...")
	articleRoute.ArticleRoutes(api, db)

	log.Println("[INFO] Setting up CommentRoutes...")
	commentRoute.CommentRoutes(api, db)

	// Anything that reaches this handler matched no route.
	app.Use(func(c *fiber.Ctx) error {
		return apperror.RouteNotFound()
	})
}
