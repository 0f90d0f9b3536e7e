// services/meal_plan_service.go
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Adosh74/ai-nutrition-app/apperrors"
	"github.com/Adosh74/ai-nutrition-app/models"
)

type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

type CreateMealPlanParams struct {
	UserID    string
	StartDate time.Time
	EndDate   time.Time
}

// UpdateMealPlanParams carries a partial update of the plan's date range.
// The owning user is fixed at creation.
type UpdateMealPlanParams struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// checkDateRange guards the plan invariant start_date <= end_date, compared by
// calendar day. Only the date part of a bound is stored, so the clock time of
// an incoming RFC 3339 timestamp takes no part in the check. It runs on create
// and again after merging a partial update, where only one bound may have
// moved.
func checkDateRange(plan *models.MealPlan) *apperrors.Error {
	if dateOnly(plan.EndDate).Before(dateOnly(plan.StartDate)) {
		return apperrors.NewValidation(apperrors.FieldViolation{
			Field:   "end_date",
			Message: "must not be before start_date",
		})
	}
	return nil
}

// dateOnly pins a bound to midnight UTC of its calendar day.
func dateOnly(d datatypes.Date) time.Time {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *MealPlanService) Create(ctx context.Context, params CreateMealPlanParams) (*models.MealPlan, error) {
	plan := &models.MealPlan{
		UserID:    params.UserID,
		StartDate: datatypes.Date(params.StartDate),
		EndDate:   datatypes.Date(params.EndDate),
	}
	if err := checkDateRange(plan); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequest("referenced user does not exist")
		}
		return nil, err
	}

	// reload so the representation carries its (empty) meals
	return s.FindByID(ctx, plan.ID)
}

func (s *MealPlanService) FindByID(ctx context.Context, id string) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.WithContext(ctx).Preload("Meals").First(&plan, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("meal plan not found")
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) FindAll(ctx context.Context) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.WithContext(ctx).
		Preload("Meals").
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (s *MealPlanService) Update(ctx context.Context, id string, params UpdateMealPlanParams) (*models.MealPlan, error) {
	// fetch without the meals so Save touches only the plan row
	var plan models.MealPlan
	err := s.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("meal plan not found")
	}
	if err != nil {
		return nil, err
	}

	if params.StartDate != nil {
		plan.StartDate = datatypes.Date(*params.StartDate)
	}
	if params.EndDate != nil {
		plan.EndDate = datatypes.Date(*params.EndDate)
	}
	if err := checkDateRange(&plan); err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).Save(&plan)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewNotFound("meal plan not found")
	}

	return s.FindByID(ctx, plan.ID)
}

func (s *MealPlanService) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.MealPlan{}, "id = ?", id)
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return apperrors.NewBadRequest("meal plan still contains meals")
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("meal plan not found")
	}
	return nil
}
