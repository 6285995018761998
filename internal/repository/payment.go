package repository

import (
	"context"

	"github.com/minerush/backend/internal/entity"
	"github.com/minerush/backend/pkg/xcontext"
)

type PaymentRepository interface {
	// CreateReceipt consumes a transaction hash. It fails on a duplicated
	// hash, which is the replay protection of paid claims.
	CreateReceipt(ctx context.Context, receipt *entity.PaymentReceipt) error
	GetReceiptsByUserID(ctx context.Context, userID string) ([]entity.PaymentReceipt, error)
}

type paymentRepository struct{}

func NewPaymentRepository() *paymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) CreateReceipt(ctx context.Context, receipt *entity.PaymentReceipt) error {
	return xcontext.DB(ctx).Create(receipt).Error
}

func (r *paymentRepository) GetReceiptsByUserID(ctx context.Context, userID string) ([]entity.PaymentReceipt, error) {
	var result []entity.PaymentReceipt
	err := xcontext.DB(ctx).Find(&result, "user_id=?", userID).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
