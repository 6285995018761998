package domain

import (
	"testing"

	"github.com/minerush/backend/internal/entity"
	"github.com/minerush/backend/internal/model"
	"github.com/minerush/backend/internal/repository"
	"github.com/minerush/backend/pkg/errorx"
	"github.com/minerush/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_userDomain_GetMe(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := NewUserDomain(repository.NewUserRepository(), repository.NewPaymentRepository())

	resp, err := d.GetMe(testutil.MockContextWithUserID(ctx, testutil.User1.ID), &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, model.User{
		ID:   testutil.User1.ID,
		Name: testutil.User1.Name,
	}, resp.User)
}

func Test_userDomain_LinkWallet(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := NewUserDomain(repository.NewUserRepository(), repository.NewPaymentRepository())

	user2Ctx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	_, err := d.LinkWallet(user2Ctx, &model.LinkWalletRequest{WalletAddress: "not-an-address"})
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid wallet address"), err)

	resp, err := d.LinkWallet(user2Ctx, &model.LinkWalletRequest{
		WalletAddress: "0x2222222222222222222222222222222222222222",
	})
	require.NoError(t, err)
	require.Equal(t, "0x2222222222222222222222222222222222222222", resp.User.WalletAddress)

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, "0x2222222222222222222222222222222222222222", user.WalletAddress)
}

func Test_userDomain_GetMyPayments(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	paymentRepo := repository.NewPaymentRepository()
	require.NoError(t, paymentRepo.CreateReceipt(ctx, &entity.PaymentReceipt{
		TxHash:       "0xaaa",
		UserID:       testutil.User1.ID,
		EventID:      "2026-09-01",
		TicketNumber: 2,
		Amount:       0.5,
	}))

	d := NewUserDomain(repository.NewUserRepository(), paymentRepo)

	resp, err := d.GetMyPayments(
		testutil.MockContextWithUserID(ctx, testutil.User1.ID), &model.GetMyPaymentsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Payments, 1)
	require.Equal(t, "0xaaa", resp.Payments[0].TxHash)
	require.Equal(t, 0.5, resp.Payments[0].Amount)

	resp, err = d.GetMyPayments(
		testutil.MockContextWithUserID(ctx, testutil.User2.ID), &model.GetMyPaymentsRequest{})
	require.NoError(t, err)
	require.Empty(t, resp.Payments)
}
