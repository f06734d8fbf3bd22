package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newshub_backend/internals/features/news/topics/dto"
	"newshub_backend/internals/features/news/topics/repository"
)

type TopicController struct {
	Repo *repository.TopicRepository
}

func NewTopicController(db *gorm.DB) *TopicController {
	return &TopicController{Repo: repository.NewTopicRepository(db)}
}

// =============================
// 📄 Get All Topics
// =============================
func (ctrl *TopicController) GetAllTopics(c *fiber.Ctx) error {
	topics, err := ctrl.Repo.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"topics": dto.ToTopicDTOs(topics)})
}
