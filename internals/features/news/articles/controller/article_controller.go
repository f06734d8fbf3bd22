package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"newshub_backend/internals/features/news/articles/dto"
	"newshub_backend/internals/features/news/articles/repository"
	"newshub_backend/internals/helpers/apperror"
)

var validateArticle = validator.New()

type ArticleController struct {
	Repo *repository.ArticleRepository
}

func NewArticleController(db *gorm.DB) *ArticleController {
	return &ArticleController{Repo: repository.NewArticleRepository(db)}
}

// ParseID turns a route id parameter into a positive-keyed int. Any
// non-integer value is a validation failure before the store is touched.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, apperror.BadRequest()
	}
	return id, nil
}

// =============================
// 📄 Get All Articles (?topic, ?sort_by, ?order)
// =============================
func (ctrl *ArticleController) GetAllArticles(c *fiber.Ctx) error {
	q := repository.ListQuery{
		Topic:  c.Query("topic"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
	}

	articles, err := ctrl.Repo.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"articles": dto.ToArticleListItemDTOs(articles)})
}

// =============================
// 🔍 Get Article By ID
// =============================
func (ctrl *ArticleController) GetArticleByID(c *fiber.Ctx) error {
	id, err := ParseID(c.Params("article_id"))
	if err != nil {
		return err
	}

	article, err := ctrl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"article": dto.ToArticleDetailDTO(*article)})
}

// =============================
// 🔄 Patch Article Votes
// =============================
// Check order: id format -> article existence -> body shape -> update.
func (ctrl *ArticleController) UpdateArticleVotes(c *fiber.Ctx) error {
	id, err := ParseID(c.Params("article_id"))
	if err != nil {
		return err
	}

	if err := ctrl.Repo.EnsureExists(c.UserContext(), id); err != nil {
		return err
	}

	var body dto.UpdateArticleVotesRequest
	if err := c.BodyParser(&body); err != nil {
		return apperror.BadRequest()
	}
	if err := validateArticle.Struct(&body); err != nil {
		return apperror.BadRequest()
	}

	article, err := ctrl.Repo.IncrementVotes(c.UserContext(), id, *body.IncVotes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"article": dto.ToArticleDTO(*article)})
}
