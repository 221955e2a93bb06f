package controller

import (
	"github.com/gofiber/fiber/v2"

	"admissions-chat-be/internal/dto"
	"admissions-chat-be/internal/pkg/serverutils"
	"admissions-chat-be/internal/service"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	ListLeads(ctx *fiber.Ctx) error
	ListEvents(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
	jwtSecret    string
}

func NewAdminController(adminService service.IAdminService, jwtSecret string) IAdminController {
	return &adminController{
		adminService: adminService,
		jwtSecret:    jwtSecret,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Post("login", c.Login)

	protected := h.Group("", serverutils.NewJwtMiddleware(c.jwtSecret))
	protected.Get("leads", c.ListLeads)
	protected.Get("events", c.ListEvents)
}

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *adminController) ListLeads(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListLeads(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminController) ListEvents(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListEvents(ctx.Context(), ctx.Query("event"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
