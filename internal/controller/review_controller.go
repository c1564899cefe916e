package controller

import (
	"ecommerce-rag-be/internal/dto"
	"ecommerce-rag-be/internal/pkg/serverutils"
	"ecommerce-rag-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReviewController interface {
	RegisterRoutes(router fiber.Router)
	Health(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
}

type ReviewController struct {
	reviewService service.IReviewService
}

func NewReviewController(reviewService service.IReviewService) IReviewController {
	return &ReviewController{reviewService: reviewService}
}

func (c *ReviewController) RegisterRoutes(router fiber.Router) {
	router.Get("/", c.Health)
	router.Post("/search", c.Search)
	router.Post("/chat", c.Chat)
}

func (c *ReviewController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (c *ReviewController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.Search(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *ReviewController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.Chat(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
