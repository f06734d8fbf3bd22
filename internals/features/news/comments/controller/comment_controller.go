package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	articleCtrl "newshub_backend/internals/features/news/articles/controller"
	"newshub_backend/internals/features/news/comments/dto"
	"newshub_backend/internals/features/news/comments/repository"
	"newshub_backend/internals/helpers/apperror"
)

var validateComment = validator.New()

type CommentController struct {
	Repo *repository.CommentRepository
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{Repo: repository.NewCommentRepository(db)}
}

// =============================
// 📄 Get Comments By Article
// =============================
func (ctrl *CommentController) GetCommentsByArticle(c *fiber.Ctx) error {
	articleID, err := articleCtrl.ParseID(c.Params("article_id"))
	if err != nil {
		return err
	}

	comments, err := ctrl.Repo.ListByArticle(c.UserContext(), articleID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"comments": dto.ToCommentDTOs(comments)})
}

// =============================
// ➕ Post Comment
// =============================
// Check order is contractual: id format -> article existence -> body shape
// -> author existence. A missing article wins over a malformed body.
func (ctrl *CommentController) CreateComment(c *fiber.Ctx) error {
	articleID, err := articleCtrl.ParseID(c.Params("article_id"))
	if err != nil {
		return err
	}

	if err := ctrl.Repo.Articles.EnsureExists(c.UserContext(), articleID); err != nil {
		return err
	}

	var body dto.CreateCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return apperror.BadRequest()
	}
	if err := validateComment.Struct(&body); err != nil {
		return apperror.BadRequest()
	}

	comment, err := ctrl.Repo.Create(c.UserContext(), articleID, body.Username, body.Body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": dto.ToCommentDTO(*comment)})
}

// =============================
// 🗑️ Delete Comment
// =============================
func (ctrl *CommentController) DeleteComment(c *fiber.Ctx) error {
	commentID, err := articleCtrl.ParseID(c.Params("comment_id"))
	if err != nil {
		return err
	}

	if err := ctrl.Repo.Delete(c.UserContext(), commentID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
