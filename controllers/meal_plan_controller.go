package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Adosh74/ai-nutrition-app/models"
	"github.com/Adosh74/ai-nutrition-app/services"
)

type MealPlanService interface {
	Create(ctx context.Context, params services.CreateMealPlanParams) (*models.MealPlan, error)
	FindByID(ctx context.Context, id string) (*models.MealPlan, error)
	FindAll(ctx context.Context) ([]models.MealPlan, error)
	Update(ctx context.Context, id string, params services.UpdateMealPlanParams) (*models.MealPlan, error)
	Delete(ctx context.Context, id string) error
}

type MealPlanController struct {
	svc MealPlanService
}

func NewMealPlanController(svc MealPlanService) *MealPlanController {
	return &MealPlanController{svc: svc}
}

type CreateMealPlanInput struct {
	UserID    string    `json:"user_id" binding:"required,uuid"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

// UpdateMealPlanInput moves the date bounds only; a plan keeps its owner.
type UpdateMealPlanInput struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

func (ctl *MealPlanController) Create(c *gin.Context) {
	var input CreateMealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(bindError(err))
		return
	}

	plan, err := ctl.svc.Create(c.Request.Context(), services.CreateMealPlanParams{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (ctl *MealPlanController) List(c *gin.Context) {
	plans, err := ctl.svc.FindAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (ctl *MealPlanController) GetByID(c *gin.Context) {
	var params idParam
	if err := c.ShouldBindUri(&params); err != nil {
		c.Error(bindError(err))
		return
	}

	plan, err := ctl.svc.FindByID(c.Request.Context(), params.ID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (ctl *MealPlanController) Update(c *gin.Context) {
	var params idParam
	if err := c.ShouldBindUri(&params); err != nil {
		c.Error(bindError(err))
		return
	}
	var input UpdateMealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(bindError(err))
		return
	}

	plan, err := ctl.svc.Update(c.Request.Context(), params.ID, services.UpdateMealPlanParams{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (ctl *MealPlanController) Delete(c *gin.Context) {
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
