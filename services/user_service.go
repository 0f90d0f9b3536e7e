// services/user_service.go
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Adosh74/ai-nutrition-app/apperrors"
	"github.com/Adosh74/ai-nutrition-app/models"
	"github.com/Adosh74/ai-nutrition-app/utils"
)

type UserService struct {
	db     *gorm.DB
	hasher *utils.PasswordHasher
}

func NewUserService(db *gorm.DB, hasher *utils.PasswordHasher) *UserService {
	return &UserService{db: db, hasher: hasher}
}

type CreateUserParams struct {
	Email    string
	Name     string
	Phone    string
	Password string
}

// UpdateUserParams carries a partial update; nil fields stay untouched.
type UpdateUserParams struct {
	Email    *string
	Name     *string
	Phone    *string
	Password *string
}

func (s *UserService) Create(ctx context.Context, params CreateUserParams) (*models.User, error) {
	digest, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    params.Email,
		Name:     params.Name,
		Phone:    params.Phone,
		Password: digest,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return nil, duplicateFieldError(field)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns (nil, nil) when no user has the address. Absence is a
// normal outcome here, unlike FindByID.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (s *UserService) Update(ctx context.Context, id string, params UpdateUserParams) (*models.User, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Phone != nil {
		user.Phone = *params.Phone
	}
	if params.Password != nil {
		digest, err := s.hasher.Hash(*params.Password)
		if err != nil {
			return nil, err
		}
		user.Password = digest
	}

	res := s.db.WithContext(ctx).Save(user)
	if res.Error != nil {
		if field, ok := uniqueViolationField(res.Error); ok {
			return nil, duplicateFieldError(field)
		}
		return nil, res.Error
	}
	// the row can vanish between the read and the write
	if res.RowsAffected == 0 {
		return nil, apperrors.NewNotFound("user not found")
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return apperrors.NewBadRequest("user has meal plans that still contain meals")
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("user not found")
	}
	return nil
}

// Login returns the same error for an unknown email and for a wrong password,
// so callers cannot probe which accounts exist.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Verify(user.Password, password) {
		return nil, apperrors.NewBadRequest("incorrect email or password")
	}
	return user, nil
}
