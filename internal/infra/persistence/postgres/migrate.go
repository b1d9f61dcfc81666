package postgres

import (
	"hostelbites/config"
	"hostelbites/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	dedupeIndexMeal     = "uniq_meal_requests_meal"
	dedupeIndexMealUser = "uniq_meal_requests_meal_user"
)

// dedupeIndexSQL returns the statements that leave exactly the unique index of scope on
// meal_requests. The other scope's index is dropped first.
func dedupeIndexSQL(scope string) (name string, statements []string) {
	if scope == config.DedupeScopeMealUser {
		return dedupeIndexMealUser, []string{
			"DROP INDEX IF EXISTS " + dedupeIndexMeal,
			"CREATE UNIQUE INDEX IF NOT EXISTS " + dedupeIndexMealUser + " ON meal_requests (meal_id, user_email)",
		}
	}

	return dedupeIndexMeal, []string{
		"DROP INDEX IF EXISTS " + dedupeIndexMealUser,
		"CREATE UNIQUE INDEX IF NOT EXISTS " + dedupeIndexMeal + " ON meal_requests (meal_id)",
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB, dedupeScope string) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.PackageModel{},
		&model.MealModel{},
		&model.MealLikeModel{},
		&model.MealReviewModel{},
		&model.PaymentModel{},
		&model.MealRequestModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	name, statements := dedupeIndexSQL(dedupeScope)
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to migrate dedupe index %s", name)
		}
	}

	return nil
}
