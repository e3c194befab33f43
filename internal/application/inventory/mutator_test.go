package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un memStore compartido por repositorios falsos y un
// TxRunner que simula rollback restaurando un snapshot cuando fn falla.
// ─────────────────────────────────────────────────────────────────────────────

type memStore struct {
	receipts        map[string]*entity.Receipt
	receiptLines    map[string][]*entity.ReceiptLine
	deliveries      map[string]*entity.Delivery
	deliveryLines   map[string][]*entity.DeliveryLine
	transfers       map[string]*entity.Transfer
	transferLines   map[string][]*entity.TransferLine
	adjustments     map[string]*entity.Adjustment
	adjustmentLines map[string][]*entity.AdjustmentLine
	balances        map[string]*entity.Balance
	ledger          []*entity.LedgerEntry
}

func newMemStore() *memStore {
	return &memStore{
		receipts:        map[string]*entity.Receipt{},
		receiptLines:    map[string][]*entity.ReceiptLine{},
		deliveries:      map[string]*entity.Delivery{},
		deliveryLines:   map[string][]*entity.DeliveryLine{},
		transfers:       map[string]*entity.Transfer{},
		transferLines:   map[string][]*entity.TransferLine{},
		adjustments:     map[string]*entity.Adjustment{},
		adjustmentLines: map[string][]*entity.AdjustmentLine{},
		balances:        map[string]*entity.Balance{},
	}
}

func balanceKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

func (s *memStore) snapshot() *memStore {
	out := newMemStore()
	for k, v := range s.receipts {
		c := *v
		out.receipts[k] = &c
	}
	for k, v := range s.receiptLines {
		for _, ln := range v {
			c := *ln
			out.receiptLines[k] = append(out.receiptLines[k], &c)
		}
	}
	for k, v := range s.deliveries {
		c := *v
		out.deliveries[k] = &c
	}
	for k, v := range s.deliveryLines {
		for _, ln := range v {
			c := *ln
			out.deliveryLines[k] = append(out.deliveryLines[k], &c)
		}
	}
	for k, v := range s.transfers {
		c := *v
		out.transfers[k] = &c
	}
	for k, v := range s.transferLines {
		for _, ln := range v {
			c := *ln
			out.transferLines[k] = append(out.transferLines[k], &c)
		}
	}
	for k, v := range s.adjustments {
		c := *v
		out.adjustments[k] = &c
	}
	for k, v := range s.adjustmentLines {
		for _, ln := range v {
			c := *ln
			out.adjustmentLines[k] = append(out.adjustmentLines[k], &c)
		}
	}
	for k, v := range s.balances {
		c := *v
		out.balances[k] = &c
	}
	for _, e := range s.ledger {
		c := *e
		out.ledger = append(out.ledger, &c)
	}
	return out
}

func (s *memStore) restore(from *memStore) {
	*s = *from
}

// memTxRunner pasa repos sobre el mismo store; si fn falla, restaura el
// snapshot previo para imitar el rollback de la transacción real.
type memTxRunner struct {
	store *memStore
}

func (t *memTxRunner) Run(_ context.Context, fn func(r TxRepos) error) error {
	snap := t.store.snapshot()
	err := fn(TxRepos{
		Receipts:    &memReceipts{s: t.store},
		Deliveries:  &memDeliveries{s: t.store},
		Transfers:   &memTransfers{s: t.store},
		Adjustments: &memAdjustments{s: t.store},
		Balances:    &memBalances{s: t.store},
		Ledger:      &memLedger{s: t.store},
	})
	if err != nil {
		t.store.restore(snap)
		return err
	}
	return nil
}

type memReceipts struct{ s *memStore }

func (r *memReceipts) Create(receipt *entity.Receipt) error {
	r.s.receipts[receipt.ID] = receipt
	return nil
}

func (r *memReceipts) GetByID(id string) (*entity.Receipt, error) {
	return r.s.receipts[id], nil
}

func (r *memReceipts) GetForUpdate(id string) (*entity.Receipt, error) {
	return r.s.receipts[id], nil
}

func (r *memReceipts) GetByReference(reference string) (*entity.Receipt, error) {
	for _, rec := range r.s.receipts {
		if rec.Reference == reference {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *memReceipts) Update(receipt *entity.Receipt) error {
	r.s.receipts[receipt.ID] = receipt
	return nil
}

func (r *memReceipts) MarkDone(id string, receivedAt time.Time) error {
	rec := r.s.receipts[id]
	rec.Status = entity.StatusDone
	rec.ReceivedDate = &receivedAt
	return nil
}

func (r *memReceipts) List(string, int, int) ([]*entity.Receipt, error) { return nil, nil }
func (r *memReceipts) Count(string) (int, error)                        { return 0, nil }

func (r *memReceipts) AddLine(line *entity.ReceiptLine) error {
	r.s.receiptLines[line.ReceiptID] = append(r.s.receiptLines[line.ReceiptID], line)
	return nil
}

func (r *memReceipts) GetLine(string) (*entity.ReceiptLine, error) { return nil, nil }
func (r *memReceipts) UpdateLine(*entity.ReceiptLine) error        { return nil }
func (r *memReceipts) DeleteLine(string) error                     { return nil }

func (r *memReceipts) ListLines(receiptID string) ([]*entity.ReceiptLine, error) {
	return r.s.receiptLines[receiptID], nil
}

type memDeliveries struct{ s *memStore }

func (r *memDeliveries) Create(delivery *entity.Delivery) error {
	r.s.deliveries[delivery.ID] = delivery
	return nil
}

func (r *memDeliveries) GetByID(id string) (*entity.Delivery, error) {
	return r.s.deliveries[id], nil
}

func (r *memDeliveries) GetForUpdate(id string) (*entity.Delivery, error) {
	return r.s.deliveries[id], nil
}

func (r *memDeliveries) GetByReference(reference string) (*entity.Delivery, error) {
	for _, d := range r.s.deliveries {
		if d.Reference == reference {
			return d, nil
		}
	}
	return nil, nil
}

func (r *memDeliveries) Update(delivery *entity.Delivery) error {
	r.s.deliveries[delivery.ID] = delivery
	return nil
}

func (r *memDeliveries) MarkDone(id string, shippedAt time.Time) error {
	d := r.s.deliveries[id]
	d.Status = entity.StatusDone
	d.ShippedDate = &shippedAt
	return nil
}

func (r *memDeliveries) List(string, int, int) ([]*entity.Delivery, error) { return nil, nil }
func (r *memDeliveries) Count(string) (int, error)                         { return 0, nil }

func (r *memDeliveries) AddLine(line *entity.DeliveryLine) error {
	r.s.deliveryLines[line.DeliveryID] = append(r.s.deliveryLines[line.DeliveryID], line)
	return nil
}

func (r *memDeliveries) GetLine(string) (*entity.DeliveryLine, error) { return nil, nil }
func (r *memDeliveries) UpdateLine(*entity.DeliveryLine) error        { return nil }
func (r *memDeliveries) DeleteLine(string) error                      { return nil }

func (r *memDeliveries) ListLines(deliveryID string) ([]*entity.DeliveryLine, error) {
	return r.s.deliveryLines[deliveryID], nil
}

type memTransfers struct{ s *memStore }

func (r *memTransfers) Create(transfer *entity.Transfer) error {
	r.s.transfers[transfer.ID] = transfer
	return nil
}

func (r *memTransfers) GetByID(id string) (*entity.Transfer, error) {
	return r.s.transfers[id], nil
}

func (r *memTransfers) GetForUpdate(id string) (*entity.Transfer, error) {
	return r.s.transfers[id], nil
}

func (r *memTransfers) GetByReference(reference string) (*entity.Transfer, error) {
	for _, t := range r.s.transfers {
		if t.Reference == reference {
			return t, nil
		}
	}
	return nil, nil
}

func (r *memTransfers) Update(transfer *entity.Transfer) error {
	r.s.transfers[transfer.ID] = transfer
	return nil
}

func (r *memTransfers) MarkDone(id string, completedAt time.Time) error {
	t := r.s.transfers[id]
	t.Status = entity.StatusDone
	t.CompletedDate = &completedAt
	return nil
}

func (r *memTransfers) List(string, int, int) ([]*entity.Transfer, error) { return nil, nil }
func (r *memTransfers) Count(string) (int, error)                         { return 0, nil }

func (r *memTransfers) AddLine(line *entity.TransferLine) error {
	r.s.transferLines[line.TransferID] = append(r.s.transferLines[line.TransferID], line)
	return nil
}

func (r *memTransfers) GetLine(string) (*entity.TransferLine, error) { return nil, nil }
func (r *memTransfers) UpdateLine(*entity.TransferLine) error        { return nil }
func (r *memTransfers) DeleteLine(string) error                      { return nil }

func (r *memTransfers) ListLines(transferID string) ([]*entity.TransferLine, error) {
	return r.s.transferLines[transferID], nil
}

type memAdjustments struct{ s *memStore }

func (r *memAdjustments) Create(adjustment *entity.Adjustment) error {
	r.s.adjustments[adjustment.ID] = adjustment
	return nil
}

func (r *memAdjustments) GetByID(id string) (*entity.Adjustment, error) {
	return r.s.adjustments[id], nil
}

func (r *memAdjustments) GetForUpdate(id string) (*entity.Adjustment, error) {
	return r.s.adjustments[id], nil
}

func (r *memAdjustments) GetByReference(reference string) (*entity.Adjustment, error) {
	for _, a := range r.s.adjustments {
		if a.Reference == reference {
			return a, nil
		}
	}
	return nil, nil
}

func (r *memAdjustments) Update(adjustment *entity.Adjustment) error {
	r.s.adjustments[adjustment.ID] = adjustment
	return nil
}

func (r *memAdjustments) MarkDone(id string, appliedAt time.Time) error {
	a := r.s.adjustments[id]
	a.Status = entity.StatusDone
	a.AppliedDate = &appliedAt
	return nil
}

func (r *memAdjustments) List(string, int, int) ([]*entity.Adjustment, error) { return nil, nil }
func (r *memAdjustments) Count(string) (int, error)                           { return 0, nil }

func (r *memAdjustments) AddLine(line *entity.AdjustmentLine) error {
	r.s.adjustmentLines[line.AdjustmentID] = append(r.s.adjustmentLines[line.AdjustmentID], line)
	return nil
}

func (r *memAdjustments) GetLine(string) (*entity.AdjustmentLine, error) { return nil, nil }

func (r *memAdjustments) UpdateLine(line *entity.AdjustmentLine) error {
	for i, ln := range r.s.adjustmentLines[line.AdjustmentID] {
		if ln.ID == line.ID {
			r.s.adjustmentLines[line.AdjustmentID][i] = line
		}
	}
	return nil
}

func (r *memAdjustments) DeleteLine(string) error { return nil }

func (r *memAdjustments) ListLines(adjustmentID string) ([]*entity.AdjustmentLine, error) {
	return r.s.adjustmentLines[adjustmentID], nil
}

type memBalances struct{ s *memStore }

func (r *memBalances) Get(productID, warehouseID string) (*entity.Balance, error) {
	if b, ok := r.s.balances[balanceKey(productID, warehouseID)]; ok {
		c := *b
		return &c, nil
	}
	return &entity.Balance{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    decimal.Zero,
		Reserved:    decimal.Zero,
	}, nil
}

func (r *memBalances) GetForUpdate(productID, warehouseID string) (*entity.Balance, error) {
	return r.Get(productID, warehouseID)
}

func (r *memBalances) Upsert(balance *entity.Balance) error {
	c := *balance
	r.s.balances[balanceKey(balance.ProductID, balance.WarehouseID)] = &c
	return nil
}

func (r *memBalances) List(repository.BalanceFilter) ([]repository.BalanceView, error) {
	return nil, nil
}

func (r *memBalances) Count(repository.BalanceFilter) (int, error) { return 0, nil }

type memLedger struct{ s *memStore }

func (r *memLedger) Create(entry *entity.LedgerEntry) error {
	c := *entry
	r.s.ledger = append(r.s.ledger, &c)
	return nil
}

func (r *memLedger) List(repository.LedgerFilter) ([]*entity.LedgerEntry, error) {
	return r.s.ledger, nil
}

func (r *memLedger) Count(repository.LedgerFilter) (int, error) {
	return len(r.s.ledger), nil
}

func (r *memLedger) SumByPair(productID, warehouseID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range r.s.ledger {
		if e.ProductID == productID && e.WarehouseID == warehouseID {
			sum = sum.Add(e.Change)
		}
	}
	return sum, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func newTestMutator() (*Mutator, *memStore) {
	store := newMemStore()
	return NewMutator(&memTxRunner{store: store}), store
}

func qty(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func seedBalance(store *memStore, productID, warehouseID, quantity string) {
	store.balances[balanceKey(productID, warehouseID)] = &entity.Balance{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    qty(quantity),
		Reserved:    decimal.Zero,
	}
}

func balanceQty(t *testing.T, store *memStore, productID, warehouseID string) decimal.Decimal {
	t.Helper()
	if b, ok := store.balances[balanceKey(productID, warehouseID)]; ok {
		return b.Quantity
	}
	return decimal.Zero
}

func ledgerFor(store *memStore, productID, warehouseID string) []*entity.LedgerEntry {
	var out []*entity.LedgerEntry
	for _, e := range store.ledger {
		if e.ProductID == productID && e.WarehouseID == warehouseID {
			out = append(out, e)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Recepciones
// ─────────────────────────────────────────────────────────────────────────────

func TestCompleteReceipt_SumaBalanceYAsienta(t *testing.T) {
	m, store := newTestMutator()
	store.receipts["rcp-1"] = &entity.Receipt{
		ID: "rcp-1", Reference: "RCP-2024-0001", WarehouseID: "wh-1", Status: entity.StatusReady,
	}
	store.receiptLines["rcp-1"] = []*entity.ReceiptLine{
		{ID: "l1", ReceiptID: "rcp-1", ProductID: "prod-1", QtyReceived: qty("10")},
		{ID: "l2", ReceiptID: "rcp-1", ProductID: "prod-2", QtyReceived: decimal.Zero},
	}

	res, err := m.CompleteReceipt(context.Background(), "rcp-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, entity.StatusDone, res.Status)
	assert.Equal(t, "RCP-2024-0001", res.Reference)
	assert.Equal(t, entity.StatusDone, store.receipts["rcp-1"].Status)
	require.NotNil(t, store.receipts["rcp-1"].ReceivedDate)

	assert.True(t, balanceQty(t, store, "prod-1", "wh-1").Equal(qty("10")))

	// La línea con cantidad cero no genera asiento.
	entries := ledgerFor(store, "prod-1", "wh-1")
	require.Len(t, entries, 1)
	assert.Equal(t, entity.LedgerTypeReceipt, entries[0].Type)
	assert.True(t, entries[0].Change.Equal(qty("10")))
	assert.Equal(t, "receipt", entries[0].ReferenceType)
	assert.Equal(t, "rcp-1", entries[0].ReferenceID)
	assert.Equal(t, "user-1", entries[0].CreatedBy)
	assert.Empty(t, ledgerFor(store, "prod-2", "wh-1"))
}

func TestCompleteReceipt_YaCompletadaEsConflicto(t *testing.T) {
	m, store := newTestMutator()
	store.receipts["rcp-1"] = &entity.Receipt{
		ID: "rcp-1", Reference: "RCP-2024-0001", WarehouseID: "wh-1", Status: entity.StatusDone,
	}
	store.receiptLines["rcp-1"] = []*entity.ReceiptLine{
		{ID: "l1", ReceiptID: "rcp-1", ProductID: "prod-1", QtyReceived: qty("10")},
	}

	_, err := m.CompleteReceipt(context.Background(), "rcp-1", "user-1")
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)

	// Sin doble conteo: balance y ledger quedan intactos.
	assert.True(t, balanceQty(t, store, "prod-1", "wh-1").IsZero())
	assert.Empty(t, store.ledger)
}

func TestCompleteReceipt_CanceladaEsConflicto(t *testing.T) {
	m, store := newTestMutator()
	store.receipts["rcp-1"] = &entity.Receipt{
		ID: "rcp-1", Reference: "RCP-2024-0001", WarehouseID: "wh-1", Status: entity.StatusCanceled,
	}

	_, err := m.CompleteReceipt(context.Background(), "rcp-1", "user-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCompleteReceipt_SinLineasEsInvalida(t *testing.T) {
	m, store := newTestMutator()
	store.receipts["rcp-1"] = &entity.Receipt{
		ID: "rcp-1", Reference: "RCP-2024-0001", WarehouseID: "wh-1", Status: entity.StatusDraft,
	}

	_, err := m.CompleteReceipt(context.Background(), "rcp-1", "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.StatusDraft, store.receipts["rcp-1"].Status)
}

func TestCompleteReceipt_NoExisteEsNotFound(t *testing.T) {
	m, _ := newTestMutator()

	_, err := m.CompleteReceipt(context.Background(), "rcp-nope", "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─────────────────────────────────────────────────────────────────────────────
// Entregas
// ─────────────────────────────────────────────────────────────────────────────

func TestShipDelivery_DescuentaBalance(t *testing.T) {
	m, store := newTestMutator()
	seedBalance(store, "prod-1", "wh-1", "10")
	store.deliveries["del-1"] = &entity.Delivery{
		ID: "del-1", Reference: "DEL-2024-0001", WarehouseID: "wh-1", Status: entity.StatusReady,
	}
	store.deliveryLines["del-1"] = []*entity.DeliveryLine{
		{ID: "l1", DeliveryID: "del-1", ProductID: "prod-1", QtyPicked: qty("4")},
	}

	res, err := m.ShipDelivery(context.Background(), "del-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, res.Status)

	assert.True(t, balanceQty(t, store, "prod-1", "wh-1").Equal(qty("6")))

	entries := ledgerFor(store, "prod-1", "wh-1")
	require.Len(t, entries, 1)
	assert.Equal(t, entity.LedgerTypeDelivery, entries[0].Type)
	assert.True(t, entries[0].Change.Equal(qty("-4")))
}

func TestShipDelivery_StockInsuficienteRevierteTodo(t *testing.T) {
	m, store := newTestMutator()
	seedBalance(store, "prod-1", "wh-1", "2")
	store.deliveries["del-1"] = &entity.Delivery{
		ID: "del-1", Reference: "DEL-2024-0001", WarehouseID: "wh-1", Status: entity.StatusReady,
	}
	store.deliveryLines["del-1"] = []*entity.DeliveryLine{
		{ID: "l1", DeliveryID: "del-1", ProductID: "prod-1", QtyPicked: qty("5")},
	}

	_, err := m.ShipDelivery(context.Background(), "del-1", "user-1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rollback: estado, balance y ledger sin cambios.
	assert.Equal(t, entity.StatusReady, store.deliveries["del-1"].Status)
	assert.True(t, balanceQty(t, store, "prod-1", "wh-1").Equal(qty("2")))
	assert.Empty(t, store.ledger)
}

func TestShipDelivery_AgotaStockExacto(t *testing.T) {
	m, store := newTestMutator()
	seedBalance(store, "prod-1", "wh-1", "5")
	store.deliveries["del-1"] = &entity.Delivery{
		ID: "del-1", Reference: "DEL-2024-0001", WarehouseID: "wh-1", Status: entity.StatusReady,
	}
	store.deliveryLines["del-1"] = []*entity.DeliveryLine{
		{ID: "l1", DeliveryID: "del-1", ProductID: "prod-1", QtyPicked: qty("5")},
	}

	_, err := m.ShipDelivery(context.Background(), "del-1", "user-1")
	require.NoError(t, err)
	assert.True(t, balanceQty(t, store, "prod-1", "wh-1").IsZero())
}

// ─────────────────────────────────────────────────────────────────────────────
// Traslados
// ─────────────────────────────────────────────────────────────────────────────

func TestCompleteTransfer_MueveEntreBodegas(t *testing.T) {
	m, store := newTestMutator()
	seedBalance(store, "prod-1", "wh-1", "8")
	store.transfers["trf-1"] = &entity.Transfer{
		ID: "trf-1", Reference: "TRF-2024-0001",
		FromWarehouseID: "wh-1", ToWarehouseID: "wh-2", Status: entity.StatusReady,
	}
	store.transferLines["trf-1"] = []*entity.TransferLine{
		{ID: "l1", TransferID: "trf-1", ProductID: "prod-1", QtySent: qty("5")},
	}

	res, err := m.CompleteTransfer(context.Background(), "trf-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, res.Status)

	assert.True(t, balanceQty(t, store, "prod-1", "wh-1").Equal(qty("3")))
	assert.True(t, balanceQty(t, store, "prod-1", "wh-2").Equal(qty("5")))

	out := ledgerFor(store, "prod-1", "wh-1")
	require.Len(t, out, 1)
	assert.Equal(t, entity.LedgerTypeTransferOut, out[0].Type)
	assert.True(t, out[0].Change.Equal(qty("-5")))

	in := ledgerFor(store, "prod-1", "wh-2")
	require.Len(t, in, 1)
	assert.Equal(t, entity.LedgerTypeTransferIn, in[0].Type)
	assert.True(t, in[0].Change.Equal(qty("5")))

	// La suma del ledger por par iguala a la proyección de balance.
	ledger := &memLedger{s: store}
	for _, wh := range []string{"wh-1", "wh-2"} {
		sum, err := ledger.SumByPair("prod-1", wh)
		require.NoError(t, err)
		assert.True(t, sum.Equal(balanceQty(t, store, "prod-1", wh)), "bodega %s", wh)
	}
}

func TestCompleteTransfer_SinStockEnOrigenRevierteTodo(t *testing.T) {
	m, store := newTestMutator()
	seedBalance(store, "prod-1", "wh-1", "3")
	store.transfers["trf-1"] = &entity.Transfer{
		ID: "trf-1", Reference: "TRF-2024-0001",
		FromWarehouseID: "wh-1", ToWarehouseID: "wh-2", Status: entity.StatusReady,
	}
	store.transferLines["trf-1"] = []*entity.TransferLine{
		{ID: "l1", TransferID: "trf-1", ProductID: "prod-1", QtySent: qty("4")},
	}

	_, err := m.CompleteTransfer(context.Background(), "trf-1", "user-1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, entity.StatusReady, store.transfers["trf-1"].Status)
	assert.True(t, balanceQty(t, store, "prod-1", "wh-1").Equal(qty("3")))
	assert.True(t, balanceQty(t, store, "prod-1", "wh-2").IsZero())
	assert.Empty(t, store.ledger)
}

// ─────────────────────────────────────────────────────────────────────────────
// Ajustes
// ─────────────────────────────────────────────────────────────────────────────

func TestApplyAdjustment_AjustaAlConteo(t *testing.T) {
	m, store := newTestMutator()
	seedBalance(store, "prod-1", "wh-1", "7")
	store.adjustments["adj-1"] = &entity.Adjustment{
		ID: "adj-1", Reference: "ADJ-2024-0001", WarehouseID: "wh-1",
		Status: entity.StatusDraft, Reason: "cycle_count",
	}
	store.adjustmentLines["adj-1"] = []*entity.AdjustmentLine{
		{ID: "l1", AdjustmentID: "adj-1", ProductID: "prod-1", QtyCounted: qty("10")},
	}

	res, err := m.ApplyAdjustment(context.Background(), "adj-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, res.Status)

	assert.True(t, balanceQty(t, store, "prod-1", "wh-1").Equal(qty("10")))

	// El delta es contado - registrado y la línea conserva lo registrado.
	entries := ledgerFor(store, "prod-1", "wh-1")
	require.Len(t, entries, 1)
	assert.Equal(t, entity.LedgerTypeAdjustment, entries[0].Type)
	assert.True(t, entries[0].Change.Equal(qty("3")))
	assert.Equal(t, "cycle_count", entries[0].Notes)
	assert.True(t, store.adjustmentLines["adj-1"][0].QtyRecorded.Equal(qty("7")))
}

func TestApplyAdjustment_ConteoMenorGeneraDeltaNegativo(t *testing.T) {
	m, store := newTestMutator()
	seedBalance(store, "prod-1", "wh-1", "7")
	store.adjustments["adj-1"] = &entity.Adjustment{
		ID: "adj-1", Reference: "ADJ-2024-0001", WarehouseID: "wh-1",
		Status: entity.StatusDraft, Reason: "damage",
	}
	store.adjustmentLines["adj-1"] = []*entity.AdjustmentLine{
		{ID: "l1", AdjustmentID: "adj-1", ProductID: "prod-1", QtyCounted: qty("2")},
	}

	_, err := m.ApplyAdjustment(context.Background(), "adj-1", "user-1")
	require.NoError(t, err)

	assert.True(t, balanceQty(t, store, "prod-1", "wh-1").Equal(qty("2")))
	entries := ledgerFor(store, "prod-1", "wh-1")
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Change.Equal(qty("-5")))
}

func TestApplyAdjustment_ConteoCoincideNoAsienta(t *testing.T) {
	m, store := newTestMutator()
	seedBalance(store, "prod-1", "wh-1", "7")
	store.adjustments["adj-1"] = &entity.Adjustment{
		ID: "adj-1", Reference: "ADJ-2024-0001", WarehouseID: "wh-1", Status: entity.StatusDraft,
	}
	store.adjustmentLines["adj-1"] = []*entity.AdjustmentLine{
		{ID: "l1", AdjustmentID: "adj-1", ProductID: "prod-1", QtyCounted: qty("7")},
	}

	_, err := m.ApplyAdjustment(context.Background(), "adj-1", "user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDone, store.adjustments["adj-1"].Status)
	assert.True(t, balanceQty(t, store, "prod-1", "wh-1").Equal(qty("7")))
	assert.Empty(t, store.ledger)
}

func TestApplyAdjustment_ConteoNegativoEsInvalido(t *testing.T) {
	m, store := newTestMutator()
	store.adjustments["adj-1"] = &entity.Adjustment{
		ID: "adj-1", Reference: "ADJ-2024-0001", WarehouseID: "wh-1", Status: entity.StatusDraft,
	}
	store.adjustmentLines["adj-1"] = []*entity.AdjustmentLine{
		{ID: "l1", AdjustmentID: "adj-1", ProductID: "prod-1", QtyCounted: qty("-1")},
	}

	_, err := m.ApplyAdjustment(context.Background(), "adj-1", "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.StatusDraft, store.adjustments["adj-1"].Status)
}

// ─────────────────────────────────────────────────────────────────────────────
// Validación de entrada
// ─────────────────────────────────────────────────────────────────────────────

func TestMutator_IDVacioEsInvalido(t *testing.T) {
	m, _ := newTestMutator()

	_, err := m.CompleteReceipt(context.Background(), "", "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = m.ShipDelivery(context.Background(), "del-1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
