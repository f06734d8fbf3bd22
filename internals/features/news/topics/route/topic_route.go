package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newshub_backend/internals/features/news/topics/controller"
)

func TopicRoutes(api fiber.Router, db *gorm.DB) {
	topicCtrl := controller.NewTopicController(db)

	topic := api.Group("/topics")
	topic.Get("/", topicCtrl.GetAllTopics)
}
