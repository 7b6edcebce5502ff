package user

import (
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	UserService UserService
}

func NewUserController(userService UserService) *UserController {
	return &UserController{
		UserService: userService,
	}
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateUser godoc
// @Summary Create user
// @Description Create a new counselor or admin account
// @Tags users
// @Accept json
// @Produce json
// @Success 201 {object} User
// @Failure 400 {object} map[string]interface{}
// @Router /api/users [post]
func (ctrl *UserController) CreateUser(ctx *fiber.Ctx) error {
	var req createUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name, email and password are required"})
	}

	claims := middleware.Claims(ctx)

	user := &User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if err := ctrl.UserService.CreateUser(ctx.UserContext(), claims.UserID, user, req.Password); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(user)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} User
// @Router /api/users [get]
func (ctrl *UserController) ListUsers(ctx *fiber.Ctx) error {
	users, err := ctrl.UserService.ListUsers(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(users)
}

// GetUser godoc
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} User
// @Failure 404 {object} map[string]interface{}
// @Router /api/users/{id} [get]
func (ctrl *UserController) GetUser(ctx *fiber.Ctx) error {
	user, err := ctrl.UserService.GetUser(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(user)
}

// UpdateUser godoc
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/users/{id} [put]
func (ctrl *UserController) UpdateUser(ctx *fiber.Ctx) error {
	var updates map[string]interface{}
	if err := ctx.BodyParser(&updates); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := middleware.Claims(ctx)
	if err := ctrl.UserService.UpdateUser(ctx.UserContext(), claims.UserID, ctx.Params("id"), updates); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "User updated successfully"})
}

// DeactivateUser godoc
// @Summary Deactivate user
// @Tags users
// @Param id path string true "User ID"
// @Success 204 {object} nil
// @Failure 500 {object} map[string]interface{}
// @Router /api/users/{id} [delete]
func (ctrl *UserController) DeactivateUser(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if err := ctrl.UserService.DeactivateUser(ctx.UserContext(), claims.UserID, ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
