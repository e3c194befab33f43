package operations

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (solo lo que el caso de uso toca)
// ──────────────────────────────────────────────────────────────────────────────

type fakeReceiptRepo struct {
	receipts map[string]*entity.Receipt
	lines    map[string]*entity.ReceiptLine
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{
		receipts: map[string]*entity.Receipt{},
		lines:    map[string]*entity.ReceiptLine{},
	}
}

func (f *fakeReceiptRepo) Create(r *entity.Receipt) error {
	f.receipts[r.ID] = r
	return nil
}

func (f *fakeReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	return f.receipts[id], nil
}

func (f *fakeReceiptRepo) GetForUpdate(id string) (*entity.Receipt, error) {
	return f.receipts[id], nil
}

func (f *fakeReceiptRepo) GetByReference(reference string) (*entity.Receipt, error) {
	for _, r := range f.receipts {
		if r.Reference == reference {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReceiptRepo) Update(r *entity.Receipt) error {
	f.receipts[r.ID] = r
	return nil
}

func (f *fakeReceiptRepo) MarkDone(id string, receivedAt time.Time) error {
	r := f.receipts[id]
	r.Status = entity.StatusDone
	r.ReceivedDate = &receivedAt
	return nil
}

func (f *fakeReceiptRepo) List(status string, limit, offset int) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, r := range f.receipts {
		if status == "" || r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReceiptRepo) Count(status string) (int, error) {
	list, _ := f.List(status, 0, 0)
	return len(list), nil
}

func (f *fakeReceiptRepo) AddLine(line *entity.ReceiptLine) error {
	f.lines[line.ID] = line
	return nil
}

func (f *fakeReceiptRepo) GetLine(lineID string) (*entity.ReceiptLine, error) {
	return f.lines[lineID], nil
}

func (f *fakeReceiptRepo) UpdateLine(line *entity.ReceiptLine) error {
	f.lines[line.ID] = line
	return nil
}

func (f *fakeReceiptRepo) DeleteLine(lineID string) error {
	delete(f.lines, lineID)
	return nil
}

func (f *fakeReceiptRepo) ListLines(receiptID string) ([]*entity.ReceiptLine, error) {
	var out []*entity.ReceiptLine
	for _, ln := range f.lines {
		if ln.ReceiptID == receiptID {
			out = append(out, ln)
		}
	}
	return out, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (f *fakeWarehouseRepo) Create(*entity.Warehouse) error { return nil }

func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return f.warehouses[id], nil
}

func (f *fakeWarehouseRepo) GetByCode(string) (*entity.Warehouse, error) { return nil, nil }
func (f *fakeWarehouseRepo) Update(*entity.Warehouse) error              { return nil }
func (f *fakeWarehouseRepo) Delete(string) error                         { return nil }

func (f *fakeWarehouseRepo) List(int, int) ([]*entity.Warehouse, error) { return nil, nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(*entity.Product) error { return nil }

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error             { return nil }

func (f *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Count(repository.ProductFilter) (int, error) { return 0, nil }

func newReceiptUseCaseForTest() (*ReceiptUseCase, *fakeReceiptRepo) {
	repo := newFakeReceiptRepo()
	warehouses := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		"wh-1": {ID: "wh-1", Name: "Bodega Central", Code: "BOD-01"},
	}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Tornillo M8", SKU: "TOR-M8", IsActive: true},
	}}
	return NewReceiptUseCase(repo, warehouses, products, nil), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestReceiptCreate_NaceEnDraft(t *testing.T) {
	uc, repo := newReceiptUseCaseForTest()

	res, err := uc.Create("user-1", dto.CreateReceiptRequest{
		Reference:   "RCP-2024-0001",
		Supplier:    "Proveedor SA",
		WarehouseID: "wh-1",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDraft, res.Status)
	assert.Equal(t, "RCP-2024-0001", res.Reference)
	assert.Equal(t, "user-1", res.CreatedBy)
	assert.NotEmpty(t, res.ID)
	assert.NotNil(t, repo.receipts[res.ID])
}

func TestReceiptCreate_BodegaInexistente(t *testing.T) {
	uc, _ := newReceiptUseCaseForTest()

	_, err := uc.Create("user-1", dto.CreateReceiptRequest{
		Reference:   "RCP-2024-0001",
		WarehouseID: "wh-nope",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceiptCreate_ReferenciaDuplicada(t *testing.T) {
	uc, _ := newReceiptUseCaseForTest()

	_, err := uc.Create("user-1", dto.CreateReceiptRequest{
		Reference: "RCP-2024-0001", WarehouseID: "wh-1",
	})
	require.NoError(t, err)

	_, err = uc.Create("user-1", dto.CreateReceiptRequest{
		Reference: "RCP-2024-0001", WarehouseID: "wh-1",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateReference)
}

func TestReceiptUpdate_TerminalEsConflicto(t *testing.T) {
	uc, repo := newReceiptUseCaseForTest()
	repo.receipts["rcp-1"] = &entity.Receipt{
		ID: "rcp-1", Reference: "RCP-2024-0001", WarehouseID: "wh-1", Status: entity.StatusDone,
	}

	notes := "nota tardía"
	_, err := uc.Update("rcp-1", dto.UpdateReceiptRequest{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReceiptUpdate_CambiaReferenciaLibre(t *testing.T) {
	uc, repo := newReceiptUseCaseForTest()
	repo.receipts["rcp-1"] = &entity.Receipt{
		ID: "rcp-1", Reference: "RCP-2024-0001", WarehouseID: "wh-1", Status: entity.StatusDraft,
	}

	ref := "RCP-2024-0002"
	res, err := uc.Update("rcp-1", dto.UpdateReceiptRequest{Reference: &ref})
	require.NoError(t, err)
	assert.Equal(t, "RCP-2024-0002", res.Reference)
}

func TestReceiptCancel_TerminalEsConflicto(t *testing.T) {
	uc, repo := newReceiptUseCaseForTest()
	repo.receipts["rcp-1"] = &entity.Receipt{
		ID: "rcp-1", Reference: "RCP-2024-0001", WarehouseID: "wh-1", Status: entity.StatusCanceled,
	}

	assert.ErrorIs(t, uc.Cancel("rcp-1"), domain.ErrConflict)
}

func TestReceiptCancel_DesdeDraft(t *testing.T) {
	uc, repo := newReceiptUseCaseForTest()
	repo.receipts["rcp-1"] = &entity.Receipt{
		ID: "rcp-1", Reference: "RCP-2024-0001", WarehouseID: "wh-1", Status: entity.StatusDraft,
	}

	require.NoError(t, uc.Cancel("rcp-1"))
	assert.Equal(t, entity.StatusCanceled, repo.receipts["rcp-1"].Status)
}

func TestReceiptAddLine_CantidadNoPositiva(t *testing.T) {
	uc, repo := newReceiptUseCaseForTest()
	repo.receipts["rcp-1"] = &entity.Receipt{
		ID: "rcp-1", Reference: "RCP-2024-0001", WarehouseID: "wh-1", Status: entity.StatusDraft,
	}

	_, err := uc.AddLine("rcp-1", dto.AddReceiptLineRequest{
		ProductID: "prod-1", QtyOrdered: decimal.Zero, UOM: "unidad",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReceiptAddLine_ProductoInexistente(t *testing.T) {
	uc, repo := newReceiptUseCaseForTest()
	repo.receipts["rcp-1"] = &entity.Receipt{
		ID: "rcp-1", Reference: "RCP-2024-0001", WarehouseID: "wh-1", Status: entity.StatusDraft,
	}

	_, err := uc.AddLine("rcp-1", dto.AddReceiptLineRequest{
		ProductID: "prod-nope", QtyOrdered: decimal.NewFromInt(3), UOM: "unidad",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceiptAddLine_EnTerminalEsConflicto(t *testing.T) {
	uc, repo := newReceiptUseCaseForTest()
	repo.receipts["rcp-1"] = &entity.Receipt{
		ID: "rcp-1", Reference: "RCP-2024-0001", WarehouseID: "wh-1", Status: entity.StatusDone,
	}

	_, err := uc.AddLine("rcp-1", dto.AddReceiptLineRequest{
		ProductID: "prod-1", QtyOrdered: decimal.NewFromInt(3), UOM: "unidad",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReceiptUpdateLine_QtyRecibidaNegativa(t *testing.T) {
	uc, repo := newReceiptUseCaseForTest()
	repo.receipts["rcp-1"] = &entity.Receipt{
		ID: "rcp-1", Reference: "RCP-2024-0001", WarehouseID: "wh-1", Status: entity.StatusDraft,
	}
	repo.lines["l1"] = &entity.ReceiptLine{
		ID: "l1", ReceiptID: "rcp-1", ProductID: "prod-1", QtyOrdered: decimal.NewFromInt(5),
	}

	neg := decimal.NewFromInt(-1)
	_, err := uc.UpdateLine("l1", dto.UpdateReceiptLineRequest{QtyReceived: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReceiptDeleteLine_SoloEditable(t *testing.T) {
	uc, repo := newReceiptUseCaseForTest()
	repo.receipts["rcp-1"] = &entity.Receipt{
		ID: "rcp-1", Reference: "RCP-2024-0001", WarehouseID: "wh-1", Status: entity.StatusDone,
	}
	repo.lines["l1"] = &entity.ReceiptLine{ID: "l1", ReceiptID: "rcp-1", ProductID: "prod-1"}

	assert.ErrorIs(t, uc.DeleteLine("l1"), domain.ErrConflict)
	assert.NotNil(t, repo.lines["l1"])
}
