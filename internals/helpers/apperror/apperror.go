package apperror

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies every failure the core can raise. Repositories and
// controllers only ever return one of these; raw store errors never travel
// past the repository that saw them.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindInternal
)

// Error is the single failure type carried through the request pipeline.
// Message is the exact client-facing text; Err is the underlying cause and
// stays server-side.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// ============================
// Constructors
// ============================

// BadRequest covers malformed ids, invalid enum values and bad body shapes.
func BadRequest() *Error {
	return &Error{Kind: KindValidation, Status: fiber.StatusBadRequest, Message: "400: Bad Request"}
}

func ArticleNotFound() *Error {
	return &Error{Kind: KindNotFound, Status: fiber.StatusNotFound, Message: "404: Article Not Found"}
}

func CommentNotFound() *Error {
	return &Error{Kind: KindNotFound, Status: fiber.StatusNotFound, Message: "404: Comment Id Not Found"}
}

func UserNotFound() *Error {
	return &Error{Kind: KindNotFound, Status: fiber.StatusNotFound, Message: "404: User Not Found"}
}

// RouteNotFound is raised by the catch-all handler for unmatched paths.
func RouteNotFound() *Error {
	return &Error{Kind: KindNotFound, Status: fiber.StatusNotFound, Message: "404: Not Found"}
}

// Internal wraps an unanticipated failure (store down, driver error, ...).
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Status: fiber.StatusInternalServerError, Message: "500: Internal Server Error", Err: err}
}

// ============================
// Classifier
// ============================

// ErrorHandler is installed as the Fiber app error handler. It is the only
// place in the codebase that turns a failure into an HTTP status and body.
// Every error body has the shape {"msg": "<code>: <Description>"}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ae *Error
	if errors.As(err, &ae) {
		if ae.Kind == KindInternal && ae.Err != nil {
			log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), ae.Err)
		}
		return c.Status(ae.Status).JSON(fiber.Map{"msg": ae.Message})
	}

	// Errors raised by Fiber itself (method not allowed, body limits, ...).
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch {
		case fe.Code == fiber.StatusNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "404: Not Found"})
		case fe.Code < fiber.StatusInternalServerError:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "400: Bad Request"})
		}
	}

	log.Printf("[ERROR] %s %s: unclassified: %v", c.Method(), c.OriginalURL(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "500: Internal Server Error"})
}
