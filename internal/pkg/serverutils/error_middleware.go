package serverutils

import (
	"errors"

	"ecommerce-rag-be/pkg/rag"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps pipeline errors to HTTP statuses in one
// place so controllers can return errors unwrapped.
//
//	InvalidQueryError / fiber 4xx -> caller fault
//	RetrievalError / GenerationError -> upstream fault, 500
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}

		var invalidQuery *rag.InvalidQueryError
		if errors.As(err, &invalidQuery) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": invalidQuery.Error()})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
