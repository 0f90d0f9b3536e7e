package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adosh74/ai-nutrition-app/apperrors"
)

func mealColumns() []string {
	return []string{"id", "name", "meal_plan_id", "calories", "carbs", "protein", "fat", "created_at", "updated_at"}
}

func TestMealServiceCreate(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewMealService(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "meals"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	meal, err := svc.Create(context.Background(), CreateMealParams{
		Name:       "Oatmeal",
		MealPlanID: "aaaaaaaa-0000-0000-0000-000000000001",
		Calories:   350,
		Carbs:      60,
		Protein:    12,
		Fat:        8,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, meal.ID)
	assert.Equal(t, "Oatmeal", meal.Name)
	assert.Equal(t, 350, meal.Calories)
}

func TestMealServiceCreateUnknownPlan(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewMealService(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "meals"`).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation, "fk_meal_plans_meals"))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), CreateMealParams{
		Name:       "Oatmeal",
		MealPlanID: "aaaaaaaa-0000-0000-0000-000000000001",
	})
	appErr := requireAppError(t, err, apperrors.BadRequest)
	assert.Equal(t, "referenced meal plan does not exist", appErr.Message)
}

func TestMealServiceFindByIDNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewMealService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "meals" WHERE id =`).
		WillReturnRows(sqlmock.NewRows(mealColumns()))

	_, err := svc.FindByID(context.Background(), "bbbbbbbb-0000-0000-0000-000000000001")
	appErr := requireAppError(t, err, apperrors.NotFound)
	assert.Contains(t, appErr.Message, "not found")
}

func TestMealServiceFindAll(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewMealService(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "meals" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(mealColumns()).
			AddRow("bbbbbbbb-0000-0000-0000-000000000001", "Oatmeal", "aaaaaaaa-0000-0000-0000-000000000001", 350, 60, 12, 8, now, now).
			AddRow("bbbbbbbb-0000-0000-0000-000000000002", "Chicken salad", "aaaaaaaa-0000-0000-0000-000000000001", 420, 18, 38, 22, now, now))

	meals, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "Chicken salad", meals[1].Name)
}

func TestMealServiceUpdateMergesFields(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewMealService(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "meals" WHERE id =`).
		WillReturnRows(sqlmock.NewRows(mealColumns()).
			AddRow("bbbbbbbb-0000-0000-0000-000000000001", "Oatmeal", "aaaaaaaa-0000-0000-0000-000000000001", 350, 60, 12, 8, now, now))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "meals" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	calories := 0
	meal, err := svc.Update(context.Background(), "bbbbbbbb-0000-0000-0000-000000000001", UpdateMealParams{
		Calories: &calories,
	})
	require.NoError(t, err)

	// zero is a legal nutrition value and must overwrite, not be skipped
	assert.Equal(t, 0, meal.Calories)
	assert.Equal(t, "Oatmeal", meal.Name)
	assert.Equal(t, 60, meal.Carbs)
}

func TestMealServiceUpdateReparentToMissingPlan(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewMealService(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "meals" WHERE id =`).
		WillReturnRows(sqlmock.NewRows(mealColumns()).
			AddRow("bbbbbbbb-0000-0000-0000-000000000001", "Oatmeal", "aaaaaaaa-0000-0000-0000-000000000001", 350, 60, 12, 8, now, now))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "meals" SET`).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation, "fk_meal_plans_meals"))
	mock.ExpectRollback()

	otherPlan := "aaaaaaaa-0000-0000-0000-000000000999"
	_, err := svc.Update(context.Background(), "bbbbbbbb-0000-0000-0000-000000000001", UpdateMealParams{
		MealPlanID: &otherPlan,
	})
	appErr := requireAppError(t, err, apperrors.BadRequest)
	assert.Equal(t, "referenced meal plan does not exist", appErr.Message)
}

func TestMealServiceDelete(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewMealService(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "meals"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(context.Background(), "bbbbbbbb-0000-0000-0000-000000000001"))
}

func TestMealServiceDeleteMissing(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewMealService(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "meals"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := svc.Delete(context.Background(), "bbbbbbbb-0000-0000-0000-000000000001")
	requireAppError(t, err, apperrors.NotFound)
}
