package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newshub_backend/internals/features/news/users/controller"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	user := api.Group("/users")
	user.Get("/", userCtrl.GetAllUsers)
}
