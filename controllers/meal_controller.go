package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adosh74/ai-nutrition-app/models"
	"github.com/Adosh74/ai-nutrition-app/services"
)

type MealService interface {
	Create(ctx context.Context, params services.CreateMealParams) (*models.Meal, error)
	FindByID(ctx context.Context, id string) (*models.Meal, error)
	FindAll(ctx context.Context) ([]models.Meal, error)
	Update(ctx context.Context, id string, params services.UpdateMealParams) (*models.Meal, error)
	Delete(ctx context.Context, id string) error
}

type MealController struct {
	svc MealService
}

func NewMealController(svc MealService) *MealController {
	return &MealController{svc: svc}
}

// Nutrition fields are pointers so an explicit zero passes "required".
type CreateMealInput struct {
	Name       string `json:"name" binding:"required"`
	MealPlanID string `json:"meal_plan_id" binding:"required,uuid"`
	Calories   *int   `json:"calories" binding:"required,gte=0"`
	Carbs      *int   `json:"carbs" binding:"required,gte=0"`
	Protein    *int   `json:"protein" binding:"required,gte=0"`
	Fat        *int   `json:"fat" binding:"required,gte=0"`
}

type UpdateMealInput struct {
	Name       *string `json:"name" binding:"omitnil,min=1"`
	MealPlanID *string `json:"meal_plan_id" binding:"omitnil,uuid"`
	Calories   *int    `json:"calories" binding:"omitnil,gte=0"`
	Carbs      *int    `json:"carbs" binding:"omitnil,gte=0"`
	Protein    *int    `json:"protein" binding:"omitnil,gte=0"`
	Fat        *int    `json:"fat" binding:"omitnil,gte=0"`
}

func (ctl *MealController) Create(c *gin.Context) {
	var input CreateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(bindError(err))
		return
	}

	meal, err := ctl.svc.Create(c.Request.Context(), services.CreateMealParams{
		Name:       input.Name,
		MealPlanID: input.MealPlanID,
		Calories:   *input.Calories,
		Carbs:      *input.Carbs,
		Protein:    *input.Protein,
		Fat:        *input.Fat,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (ctl *MealController) List(c *gin.Context) {
	meals, err := ctl.svc.FindAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (ctl *MealController) GetByID(c *gin.Context) {
	var params idParam
	if err := c.ShouldBindUri(&params); err != nil {
		c.Error(bindError(err))
		return
	}

	meal, err := ctl.svc.FindByID(c.Request.Context(), params.ID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (ctl *MealController) Update(c *gin.Context) {
	var params idParam
	if err := c.ShouldBindUri(&params); err != nil {
		c.Error(bindError(err))
		return
	}
	var input UpdateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(bindError(err))
		return
	}

	meal, err := ctl.svc.Update(c.Request.Context(), params.ID, services.UpdateMealParams{
		Name:       input.Name,
		MealPlanID: input.MealPlanID,
		Calories:   input.Calories,
		Carbs:      input.Carbs,
		Protein:    input.Protein,
		Fat:        input.Fat,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (ctl *MealController) Delete(c *gin.Context) {
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
