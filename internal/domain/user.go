package domain

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/minerush/backend/internal/entity"
	"github.com/minerush/backend/internal/model"
	"github.com/minerush/backend/internal/repository"
	"github.com/minerush/backend/pkg/errorx"
	"github.com/minerush/backend/pkg/xcontext"
)

type UserDomain interface {
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
	LinkWallet(context.Context, *model.LinkWalletRequest) (*model.LinkWalletResponse, error)
	GetMyPayments(context.Context, *model.GetMyPaymentsRequest) (*model.GetMyPaymentsResponse, error)
}

type userDomain struct {
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
}

func NewUserDomain(
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
) *userDomain {
	return &userDomain{userRepo: userRepo, paymentRepo: paymentRepo}
}

func (d *userDomain) GetMe(
	ctx context.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetMeResponse{User: convertUser(user)}, nil
}

// LinkWallet stores the wallet paid tickets must be bought from. Claims of
// paid tickets are rejected until a wallet is linked.
func (d *userDomain) LinkWallet(
	ctx context.Context, req *model.LinkWalletRequest,
) (*model.LinkWalletResponse, error) {
	if !common.IsHexAddress(req.WalletAddress) {
		return nil, errorx.New(errorx.BadRequest, "Invalid wallet address")
	}

	userID := xcontext.RequestUserID(ctx)
	wallet := common.HexToAddress(req.WalletAddress).Hex()
	err := d.userRepo.UpdateByID(ctx, userID, &entity.User{WalletAddress: wallet})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot link wallet: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LinkWalletResponse{User: convertUser(user)}, nil
}

func (d *userDomain) GetMyPayments(
	ctx context.Context, req *model.GetMyPaymentsRequest,
) (*model.GetMyPaymentsResponse, error) {
	receipts, err := d.paymentRepo.GetReceiptsByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get payment receipts: %v", err)
		return nil, errorx.Unknown
	}

	payments := make([]model.PaymentReceipt, 0, len(receipts))
	for _, receipt := range receipts {
		payments = append(payments, convertPaymentReceipt(receipt))
	}

	return &model.GetMyPaymentsResponse{Payments: payments}, nil
}
