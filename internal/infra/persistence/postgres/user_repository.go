package postgres

import (
	"context"

	"hostelbites/internal/domain/entity"
	"hostelbites/internal/domain/repository"
	"hostelbites/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, storeError(err, "find user by email")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserExists
		}

		return storeError(err, "insert user")
	}
	user.ID = userM.ID.String()

	return nil
}

// SetBadge checks RowsAffected, which PostgreSQL reports for every matched row even when the value is unchanged.
func (repo *userRepository) SetBadge(ctx context.Context, email string, badge *string) error {
	res := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Update("badge", badge)
	if res.Error != nil {
		return storeError(res.Error, "update user badge")
	}
	if res.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) RestoreBadge(ctx context.Context, email, current string, badge *string) (bool, error) {
	res := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ? AND badge = ?", email, current).
		Update("badge", badge)
	if res.Error != nil {
		return false, storeError(res.Error, "restore user badge")
	}

	return res.RowsAffected > 0, nil
}

func (repo *userRepository) List(ctx context.Context, filter entity.UserFilter) ([]*entity.User, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("email ILIKE ? OR name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, storeError(err, "count users")
	}

	var userMs []model.UserModel
	if err := paginate(query.Order("created_at DESC"), filter.Page).Find(&userMs).Error; err != nil {
		return nil, 0, storeError(err, "find users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, total, nil
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      u.Role.String(),
		Badge:     u.Badge,
		CreatedAt: u.CreatedAt,
	}
}

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:        m.ID.String(),
		Email:     m.Email,
		Name:      m.Name,
		PhotoURL:  m.PhotoURL,
		Role:      entity.Role(m.Role),
		Badge:     m.Badge,
		CreatedAt: m.CreatedAt,
	}
}
