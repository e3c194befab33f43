package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Receipts    repository.ReceiptRepository
	Deliveries  repository.DeliveryRepository
	Transfers   repository.TransferRepository
	Adjustments repository.AdjustmentRepository
	Balances    repository.BalanceRepository
	Ledger      repository.LedgerRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Commit si fn devuelve nil, Rollback si no.
// Garantiza la atomicidad balance+ledger+estado de la completación.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
