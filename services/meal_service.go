// services/meal_service.go
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Adosh74/ai-nutrition-app/apperrors"
	"github.com/Adosh74/ai-nutrition-app/models"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type CreateMealParams struct {
	Name       string
	MealPlanID string
	Calories   int
	Carbs      int
	Protein    int
	Fat        int
}

// UpdateMealParams carries a partial update; nil fields stay untouched.
type UpdateMealParams struct {
	Name       *string
	MealPlanID *string
	Calories   *int
	Carbs      *int
	Protein    *int
	Fat        *int
}

func (s *MealService) Create(ctx context.Context, params CreateMealParams) (*models.Meal, error) {
	meal := &models.Meal{
		Name:       params.Name,
		MealPlanID: params.MealPlanID,
		Calories:   params.Calories,
		Carbs:      params.Carbs,
		Protein:    params.Protein,
		Fat:        params.Fat,
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequest("referenced meal plan does not exist")
		}
		return nil, err
	}
	return meal, nil
}

func (s *MealService) FindByID(ctx context.Context, id string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).First(&meal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("meal not found")
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) FindAll(ctx context.Context) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&meals).Error
	return meals, err
}

func (s *MealService) Update(ctx context.Context, id string, params UpdateMealParams) (*models.Meal, error) {
	meal, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		meal.Name = *params.Name
	}
	if params.MealPlanID != nil {
		meal.MealPlanID = *params.MealPlanID
	}
	if params.Calories != nil {
		meal.Calories = *params.Calories
	}
	if params.Carbs != nil {
		meal.Carbs = *params.Carbs
	}
	if params.Protein != nil {
		meal.Protein = *params.Protein
	}
	if params.Fat != nil {
		meal.Fat = *params.Fat
	}

	res := s.db.WithContext(ctx).Save(meal)
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return nil, apperrors.NewBadRequest("referenced meal plan does not exist")
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewNotFound("meal not found")
	}
	return meal, nil
}

func (s *MealService) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Meal{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("meal not found")
	}
	return nil
}
