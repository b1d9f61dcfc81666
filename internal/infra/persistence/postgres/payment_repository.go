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

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a payment ledger repository using GORM.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// xmax is zero only for a row version written by a plain insert.
const upsertPaymentSQL = `INSERT INTO payments (user_email, package_name, amount, payment_method, transaction_id, paid_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (user_email) DO UPDATE SET
	package_name = EXCLUDED.package_name,
	amount = EXCLUDED.amount,
	payment_method = EXCLUDED.payment_method,
	transaction_id = EXCLUDED.transaction_id,
	paid_at = EXCLUDED.paid_at
RETURNING id, user_email, package_name, amount, payment_method, transaction_id, paid_at, (xmax = 0) AS inserted`

type upsertedPaymentRow struct {
	ID            uuid.UUID
	UserEmail     string
	PackageName   string
	Amount        int64
	PaymentMethod string
	TransactionID string
	PaidAt        time.Time
	Inserted      bool
}

func (repo *paymentRepository) UpsertByEmail(ctx context.Context, payment *entity.Payment) (*entity.PaymentRecord, error) {
	var row upsertedPaymentRow
	err := repo.db.WithContext(ctx).Raw(upsertPaymentSQL,
		payment.UserEmail,
		payment.PackageName,
		payment.Amount,
		payment.PaymentMethod,
		payment.TransactionID,
		payment.PaidAt,
	).Scan(&row).Error
	if err != nil {
		return nil, storeError(err, "upsert payment")
	}

	return &entity.PaymentRecord{
		Payment: &entity.Payment{
			ID:            row.ID.String(),
			UserEmail:     row.UserEmail,
			PackageName:   row.PackageName,
			Amount:        row.Amount,
			PaymentMethod: row.PaymentMethod,
			TransactionID: row.TransactionID,
			PaidAt:        row.PaidAt,
		},
		Created: row.Inserted,
	}, nil
}

func (repo *paymentRepository) FindByEmail(ctx context.Context, email string) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	if err := repo.db.WithContext(ctx).Where("user_email = ?", email).First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, storeError(err, "find payment by email")
	}

	return toPaymentDomain(&paymentM), nil
}

func (repo *paymentRepository) List(ctx context.Context, page entity.Page) ([]*entity.Payment, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.PaymentModel{}).Count(&total).Error; err != nil {
		return nil, 0, storeError(err, "count payments")
	}

	var paymentMs []model.PaymentModel
	query := repo.db.WithContext(ctx).Order("paid_at DESC")
	if err := paginate(query, page).Find(&paymentMs).Error; err != nil {
		return nil, 0, storeError(err, "find payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentMs))
	for i := range paymentMs {
		payments = append(payments, toPaymentDomain(&paymentMs[i]))
	}

	return payments, total, nil
}

func toPaymentDomain(m *model.PaymentModel) *entity.Payment {
	return &entity.Payment{
		ID:            m.ID.String(),
		UserEmail:     m.UserEmail,
		PackageName:   m.PackageName,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		TransactionID: m.TransactionID,
		PaidAt:        m.PaidAt,
	}
}
