package controller

import (
	"robotics-rag-be/internal/constant"
	"robotics-rag-be/internal/dto"
	"robotics-rag-be/internal/mapper"
	"robotics-rag-be/internal/pkg/serverutils"
	"robotics-rag-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRagController interface {
	RegisterRoutes(r fiber.Router)
	Query(ctx *fiber.Ctx) error
	Topics(ctx *fiber.Ctx) error
}

type ragController struct {
	ragService service.IRagService
}

func NewRagController(ragService service.IRagService) IRagController {
	return &ragController{
		ragService: ragService,
	}
}

func (c *ragController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/robotics")
	h.Post("query", c.Query)
	h.Get("topics", c.Topics)
}

func (c *ragController) Query(ctx *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	answer, err := c.ragService.AnswerQuestion(ctx.Context(), req.QueryText, req.SelectedText)
	if err != nil {
		return err
	}

	return ctx.JSON(mapper.ToAnswerResponse(answer))
}

func (c *ragController) Topics(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.TopicsResponse{
		Topics: constant.RoboticsTopics,
	})
}
