package postgres

import (
	"strings"

	"hostelbites/internal/domain/entity"
	domainerrors "hostelbites/internal/domain/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a substring pattern for ILIKE with wildcards in search escaped.
func likePattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

func paginate(db *gorm.DB, page entity.Page) *gorm.DB {
	if page.Skip > 0 {
		db = db.Offset(int(page.Skip))
	}
	if page.Limit > 0 {
		db = db.Limit(int(page.Limit))
	}

	return db
}

// parseID parses a row id. Malformed ids never match a stored row.
func parseID(id string) (uuid.UUID, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, false
	}

	return parsed, true
}

func storeError(err error, operation string) error {
	return domainerrors.NewStoreError(err, operation)
}
