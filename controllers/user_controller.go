package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adosh74/ai-nutrition-app/models"
	"github.com/Adosh74/ai-nutrition-app/services"
)

// UserService is the slice of the user service this controller needs.
type UserService interface {
	Create(ctx context.Context, params services.CreateUserParams) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, params services.UpdateUserParams) (*models.User, error)
	Delete(ctx context.Context, id string) error
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type UserController struct {
	svc UserService
}

func NewUserController(svc UserService) *UserController {
	return &UserController{svc: svc}
}

type CreateUserInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=20"`
}

// UpdateUserInput is the partial variant: every field optional, same shape
// rules as create when a field is present.
type UpdateUserInput struct {
	Email    *string `json:"email" binding:"omitnil,email"`
	Name     *string `json:"name" binding:"omitnil,min=1"`
	Phone    *string `json:"phone" binding:"omitnil,min=1"`
	Password *string `json:"password" binding:"omitnil,min=8,max=20"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *UserController) Create(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(bindError(err))
		return
	}

	user, err := ctl.svc.Create(c.Request.Context(), services.CreateUserParams{
		Email:    input.Email,
		Name:     input.Name,
		Phone:    input.Phone,
		Password: input.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (ctl *UserController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(bindError(err))
		return
	}

	user, err := ctl.svc.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.svc.FindAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *UserController) GetByID(c *gin.Context) {
	var params idParam
	if err := c.ShouldBindUri(&params); err != nil {
		c.Error(bindError(err))
		return
	}

	user, err := ctl.svc.FindByID(c.Request.Context(), params.ID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) Update(c *gin.Context) {
	var params idParam
	if err := c.ShouldBindUri(&params); err != nil {
		c.Error(bindError(err))
		return
	}
	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(bindError(err))
		return
	}

	user, err := ctl.svc.Update(c.Request.Context(), params.ID, services.UpdateUserParams{
		Email:    input.Email,
		Name:     input.Name,
		Phone:    input.Phone,
		Password: input.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) Delete(c *gin.Context) {
	var params idParam
	if err := c.ShouldBindUri(&params); err != nil {
		c.Error(bindError(err))
		return
	}

	if err := ctl.svc.Delete(c.Request.Context(), params.ID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
