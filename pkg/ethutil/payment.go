package ethutil

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// PaymentVerifier checks a claimed on-chain payment before the server trusts
// it. Implementations must verify sender, recipient, amount, and finality.
type PaymentVerifier interface {
	Verify(ctx context.Context, txHash string, amount float64, wallet string) error
}

type rpcPaymentVerifier struct {
	client  *ethclient.Client
	deposit common.Address
}

func NewPaymentVerifier(rpcEndpoint, depositAddress string) (*rpcPaymentVerifier, error) {
	client, err := ethclient.Dial(rpcEndpoint)
	if err != nil {
		return nil, err
	}

	if !common.IsHexAddress(depositAddress) {
		return nil, fmt.Errorf("invalid deposit address %s", depositAddress)
	}

	return &rpcPaymentVerifier{
		client:  client,
		deposit: common.HexToAddress(depositAddress),
	}, nil
}

func (v *rpcPaymentVerifier) Verify(ctx context.Context, txHash string, amount float64, wallet string) error {
	if !common.IsHexAddress(wallet) {
		return fmt.Errorf("invalid claimer wallet %s", wallet)
	}

	hash := common.HexToHash(txHash)

	tx, pending, err := v.client.TransactionByHash(ctx, hash)
	if err != nil {
		return fmt.Errorf("cannot get transaction %s: %w", txHash, err)
	}

	if pending {
		return fmt.Errorf("transaction %s is not finalized yet", txHash)
	}

	if tx.To() == nil || *tx.To() != v.deposit {
		return fmt.Errorf("transaction %s is not sent to the deposit address", txHash)
	}

	receipt, err := v.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return fmt.Errorf("cannot get receipt of %s: %w", txHash, err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("transaction %s failed on chain", txHash)
	}

	// The payment must come out of the claimer's own wallet, so observing
	// someone else's transaction hash gives an attacker nothing.
	sender, err := v.client.TransactionSender(ctx, tx, receipt.BlockHash, receipt.TransactionIndex)
	if err != nil {
		return fmt.Errorf("cannot resolve sender of %s: %w", txHash, err)
	}

	if sender != common.HexToAddress(wallet) {
		return fmt.Errorf("transaction %s was not sent from the claimer wallet", txHash)
	}

	if tx.Value().Cmp(toWei(amount)) < 0 {
		return fmt.Errorf("transaction %s underpays the ticket", txHash)
	}

	return nil
}

func toWei(amount float64) *big.Int {
	wei, _ := new(big.Float).Mul(
		big.NewFloat(amount),
		new(big.Float).SetInt(big.NewInt(1e18)),
	).Int(nil)
	return wei
}
