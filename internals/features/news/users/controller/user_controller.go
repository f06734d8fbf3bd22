package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newshub_backend/internals/features/news/users/dto"
	"newshub_backend/internals/features/news/users/repository"
)

type UserController struct {
	Repo *repository.UserRepository
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Repo: repository.NewUserRepository(db)}
}

// =============================
// 📄 Get All Users
// =============================
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	users, err := ctrl.Repo.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"users": dto.ToUserDTOs(users)})
}
