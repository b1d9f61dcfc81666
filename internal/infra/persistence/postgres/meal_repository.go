package postgres

import (
	"context"
	"time"

	"hostelbites/internal/domain/entity"
	"hostelbites/internal/domain/repository"
	"hostelbites/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository creates a meal repository. Likes and reviews are stored in child tables.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{db: db}
}

func withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Likes", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Preload("Reviews", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") })
}

func (repo *mealRepository) FindByID(ctx context.Context, id string) (*entity.Meal, error) {
	mealID, ok := parseID(id)
	if !ok {
		return nil, repository.ErrMealNotFound
	}

	var mealM model.MealModel
	if err := withChildren(repo.db.WithContext(ctx)).Where("id = ?", mealID).First(&mealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealNotFound
		}

		return nil, storeError(err, "find meal by id")
	}

	return toMealDomain(&mealM), nil
}

func mealScope(filter entity.MealFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category)
		}
		if filter.Search != "" {
			db = db.Where("title ILIKE ?", likePattern(filter.Search))
		}
		if filter.MinPrice > 0 {
			db = db.Where("price >= ?", filter.MinPrice)
		}
		if filter.MaxPrice > 0 {
			db = db.Where("price <= ?", filter.MaxPrice)
		}

		return db
	}
}

func (repo *mealRepository) List(ctx context.Context, filter entity.MealFilter) ([]*entity.Meal, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.MealModel{}).Scopes(mealScope(filter)).Count(&total).Error; err != nil {
		return nil, 0, storeError(err, "count meals")
	}

	query := withChildren(repo.db.WithContext(ctx)).Scopes(mealScope(filter)).Order("posted_at DESC")

	var mealMs []model.MealModel
	if err := paginate(query, filter.Page).Find(&mealMs).Error; err != nil {
		return nil, 0, storeError(err, "find meals")
	}

	meals := make([]*entity.Meal, 0, len(mealMs))
	for i := range mealMs {
		meals = append(meals, toMealDomain(&mealMs[i]))
	}

	return meals, total, nil
}

func (repo *mealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	mealM := &model.MealModel{
		Title:            meal.Title,
		Category:         meal.Category,
		Price:            meal.Price,
		Description:      meal.Description,
		Image:            meal.Image,
		Ingredients:      datatypes.NewJSONSlice(meal.Ingredients),
		DistributorEmail: meal.DistributorEmail,
		Rating:           meal.Rating,
		PostedAt:         meal.PostedAt,
	}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(mealM).Error; err != nil {
		return storeError(err, "insert meal")
	}
	meal.ID = mealM.ID.String()

	return nil
}

// AddLike inserts the (meal, email) pair; the unique pair index turns a repeated like into a no-op.
func (repo *mealRepository) AddLike(ctx context.Context, mealID, email string) (bool, error) {
	id, ok := parseID(mealID)
	if !ok {
		return false, repository.ErrMealNotFound
	}

	res := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.MealLikeModel{MealID: id, UserEmail: email, CreatedAt: time.Now().UTC()})
	if res.Error != nil {
		if isForeignKeyConstraintViolation(res.Error) {
			return false, repository.ErrMealNotFound
		}

		return false, storeError(res.Error, "insert meal like")
	}

	return res.RowsAffected > 0, nil
}

func (repo *mealRepository) RemoveLike(ctx context.Context, mealID, email string) (bool, error) {
	id, ok := parseID(mealID)
	if !ok {
		return false, repository.ErrMealNotFound
	}

	res := repo.db.WithContext(ctx).
		Where("meal_id = ? AND user_email = ?", id, email).
		Delete(&model.MealLikeModel{})
	if res.Error != nil {
		return false, storeError(res.Error, "delete meal like")
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	// Nothing removed: tell an absent like apart from an absent meal.
	if err := repo.ensureMeal(ctx, id); err != nil {
		return false, err
	}

	return false, nil
}

func (repo *mealRepository) ensureMeal(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.MealModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return storeError(err, "count meal")
	}
	if count == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

func (repo *mealRepository) AppendReview(ctx context.Context, mealID string, review entity.Review) error {
	id, ok := parseID(mealID)
	if !ok {
		return repository.ErrMealNotFound
	}

	reviewM := &model.MealReviewModel{
		MealID:      id,
		AuthorEmail: review.AuthorEmail,
		AuthorName:  review.AuthorName,
		Text:        review.Text,
		Rating:      review.Rating,
		CreatedAt:   review.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMealNotFound
		}

		return storeError(err, "insert meal review")
	}

	return nil
}

type userReviewRow struct {
	MealID      uuid.UUID
	MealTitle   string
	LikeCount   int
	AuthorEmail string
	AuthorName  string
	Text        string
	Rating      int
	CreatedAt   time.Time
}

const userReviewColumns = `r.meal_id, m.title AS meal_title,
	(SELECT COUNT(*) FROM meal_likes l WHERE l.meal_id = r.meal_id) AS like_count,
	r.author_email, r.author_name, r.text, r.rating, r.created_at`

func (repo *mealRepository) FindReviewsByAuthor(ctx context.Context, email string) ([]*entity.UserReview, error) {
	var rows []userReviewRow
	err := repo.db.WithContext(ctx).
		Table("meal_reviews AS r").
		Select(userReviewColumns).
		Joins("JOIN meals m ON m.id = r.meal_id").
		Where("r.author_email = ?", email).
		Order("r.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, storeError(err, "find reviews by author")
	}

	reviews := make([]*entity.UserReview, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, &entity.UserReview{
			MealID:    row.MealID.String(),
			MealTitle: row.MealTitle,
			LikeCount: row.LikeCount,
			Review: entity.Review{
				AuthorEmail: row.AuthorEmail,
				AuthorName:  row.AuthorName,
				Text:        row.Text,
				Rating:      row.Rating,
				CreatedAt:   row.CreatedAt,
			},
		})
	}

	return reviews, nil
}

func toMealDomain(m *model.MealModel) *entity.Meal {
	likes := make([]string, 0, len(m.Likes))
	for _, like := range m.Likes {
		likes = append(likes, like.UserEmail)
	}

	reviews := make([]entity.Review, 0, len(m.Reviews))
	for _, r := range m.Reviews {
		reviews = append(reviews, entity.Review{
			AuthorEmail: r.AuthorEmail,
			AuthorName:  r.AuthorName,
			Text:        r.Text,
			Rating:      r.Rating,
			CreatedAt:   r.CreatedAt,
		})
	}

	return &entity.Meal{
		ID:               m.ID.String(),
		Title:            m.Title,
		Category:         m.Category,
		Price:            m.Price,
		Description:      m.Description,
		Image:            m.Image,
		Ingredients:      []string(m.Ingredients),
		DistributorEmail: m.DistributorEmail,
		Rating:           m.Rating,
		Likes:            likes,
		Reviews:          reviews,
		PostedAt:         m.PostedAt,
	}
}
