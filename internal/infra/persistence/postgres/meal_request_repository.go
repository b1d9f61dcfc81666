package postgres

import (
	"context"
	"time"

	"hostelbites/internal/domain/entity"
	"hostelbites/internal/domain/repository"
	"hostelbites/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type mealRequestRepository struct {
	db *gorm.DB
}

// NewMealRequestRepository creates a meal request repository using GORM.
func NewMealRequestRepository(db *gorm.DB) repository.MealRequestRepository {
	return &mealRequestRepository{db: db}
}

func (repo *mealRequestRepository) Exists(ctx context.Context, key entity.MealRequestKey) (bool, error) {
	mealID, ok := parseID(key.MealID)
	if !ok {
		return false, nil
	}

	query := repo.db.WithContext(ctx).Model(&model.MealRequestModel{}).Where("meal_id = ?", mealID)
	if key.UserEmail != "" {
		query = query.Where("user_email = ?", key.UserEmail)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, storeError(err, "count meal requests")
	}

	return count > 0, nil
}

func (repo *mealRequestRepository) Create(ctx context.Context, req *entity.MealRequest) error {
	mealID, ok := parseID(req.MealID)
	if !ok {
		return repository.ErrMealNotFound
	}

	reqM := &model.MealRequestModel{
		MealID:      mealID,
		UserEmail:   req.UserEmail,
		UserName:    req.UserName,
		Status:      string(req.Status),
		RequestedAt: req.RequestedAt,
	}
	if err := repo.db.WithContext(ctx).Create(reqM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMealRequest
		}

		return storeError(err, "insert meal request")
	}
	req.ID = reqM.ID.String()

	return nil
}

func (repo *mealRequestRepository) FindByID(ctx context.Context, id string) (*entity.MealRequest, error) {
	reqID, ok := parseID(id)
	if !ok {
		return nil, repository.ErrMealRequestNotFound
	}

	var reqM model.MealRequestModel
	if err := repo.db.WithContext(ctx).Where("id = ?", reqID).First(&reqM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealRequestNotFound
		}

		return nil, storeError(err, "find meal request by id")
	}

	return &entity.MealRequest{
		ID:          reqM.ID.String(),
		MealID:      reqM.MealID.String(),
		UserEmail:   reqM.UserEmail,
		UserName:    reqM.UserName,
		Status:      entity.MealRequestStatus(reqM.Status),
		RequestedAt: reqM.RequestedAt,
	}, nil
}

func (repo *mealRequestRepository) UpdateStatus(ctx context.Context, id string, status entity.MealRequestStatus) error {
	reqID, ok := parseID(id)
	if !ok {
		return repository.ErrMealRequestNotFound
	}

	res := repo.db.WithContext(ctx).
		Model(&model.MealRequestModel{}).
		Where("id = ?", reqID).
		Update("status", string(status))
	if res.Error != nil {
		return storeError(res.Error, "update meal request status")
	}
	if res.RowsAffected == 0 {
		return repository.ErrMealRequestNotFound
	}

	return nil
}

func (repo *mealRequestRepository) TransitionStatus(ctx context.Context, id string, from, to entity.MealRequestStatus) (bool, error) {
	reqID, ok := parseID(id)
	if !ok {
		return false, nil
	}

	res := repo.db.WithContext(ctx).
		Model(&model.MealRequestModel{}).
		Where("id = ? AND status = ?", reqID, string(from)).
		Update("status", string(to))
	if res.Error != nil {
		return false, storeError(res.Error, "transition meal request status")
	}

	return res.RowsAffected > 0, nil
}

func (repo *mealRequestRepository) Delete(ctx context.Context, id string) error {
	reqID, ok := parseID(id)
	if !ok {
		return repository.ErrMealRequestNotFound
	}

	res := repo.db.WithContext(ctx).Where("id = ?", reqID).Delete(&model.MealRequestModel{})
	if res.Error != nil {
		return storeError(res.Error, "delete meal request")
	}
	if res.RowsAffected == 0 {
		return repository.ErrMealRequestNotFound
	}

	return nil
}

// Counts are read at query time so views always reflect the meal's current state.
const requestViewColumns = `r.id AS request_id, r.meal_id, r.user_email, r.user_name, r.status, r.requested_at,
	COALESCE(m.title, '') AS title,
	(SELECT COUNT(*) FROM meal_likes l WHERE l.meal_id = r.meal_id) AS like_count,
	(SELECT COUNT(*) FROM meal_reviews v WHERE v.meal_id = r.meal_id) AS review_count`

type requestViewRow struct {
	RequestID   uuid.UUID
	MealID      uuid.UUID
	UserEmail   string
	UserName    string
	Status      string
	RequestedAt time.Time
	Title       string
	LikeCount   int
	ReviewCount int
}

func (repo *mealRequestRepository) viewQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("meal_requests AS r").
		Select(requestViewColumns).
		Joins("LEFT JOIN meals m ON m.id = r.meal_id")
}

func (repo *mealRequestRepository) ListViewsByUser(ctx context.Context, email string) ([]*entity.MealRequestView, error) {
	var rows []requestViewRow
	err := repo.viewQuery(ctx).
		Where("r.user_email = ?", email).
		Order("r.requested_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, storeError(err, "list meal request views by user")
	}

	return toRequestViews(rows), nil
}

func requestFilterScope(filter entity.MealRequestFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Status != "" {
			db = db.Where("r.status = ?", string(filter.Status))
		}
		if filter.Search != "" {
			pattern := likePattern(filter.Search)
			db = db.Where("r.user_email ILIKE ? OR r.user_name ILIKE ?", pattern, pattern)
		}

		return db
	}
}

func (repo *mealRequestRepository) ListViews(ctx context.Context, filter entity.MealRequestFilter) ([]*entity.MealRequestView, int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Table("meal_requests AS r").
		Scopes(requestFilterScope(filter)).
		Count(&total).Error
	if err != nil {
		return nil, 0, storeError(err, "count meal requests")
	}

	var rows []requestViewRow
	query := repo.viewQuery(ctx).Scopes(requestFilterScope(filter)).Order("r.requested_at DESC")
	if err := paginate(query, filter.Page).Scan(&rows).Error; err != nil {
		return nil, 0, storeError(err, "list meal request views")
	}

	return toRequestViews(rows), total, nil
}

func toRequestViews(rows []requestViewRow) []*entity.MealRequestView {
	views := make([]*entity.MealRequestView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &entity.MealRequestView{
			RequestID:   row.RequestID.String(),
			MealID:      row.MealID.String(),
			UserEmail:   row.UserEmail,
			UserName:    row.UserName,
			Status:      entity.MealRequestStatus(row.Status),
			RequestedAt: row.RequestedAt,
			Title:       row.Title,
			LikeCount:   row.LikeCount,
			ReviewCount: row.ReviewCount,
		})
	}

	return views
}
