package repository

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Role")
}

func (r *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.query(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return first[entity.User](r.query(ctx).Where("id = ?", id))
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return first[entity.User](r.query(ctx).Where("email = ?", email))
}

func (r *userRepository) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	var omit []string
	password := user.Password
	if password != "" {
		if err := HashPassword(user); err != nil {
			return nil, err
		}
	} else if user.ID == 0 {
		return nil, apperror.Validation("password", "is required")
	} else {
		omit = append(omit, "password_hash")
	}

	if err := save(r.db.WithContext(ctx), user, user.ID, "user", omit...); err != nil {
		// the caller keeps the plaintext so it can retry
		user.Password = password
		return nil, err
	}
	return r.FindByID(ctx, user.ID)
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return remove(r.db.WithContext(ctx), &entity.User{}, id, "user")
}

// HashPassword moves user.Password into PasswordHash as a bcrypt hash.
func HashPassword(user *entity.User) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashed)
	user.Password = ""
	return nil
}
