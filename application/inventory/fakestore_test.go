package inventory_test

import (
	"context"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
)

type stockKey struct {
	hubID     uint64
	productID uint64
}

// memStore is an in-memory hub_inventory with per-transaction staging and a version check on commit,
// close enough to the MySQL behaviour for the ledger's concurrency guarantees.
type memStore struct {
	mu        sync.Mutex
	nextID    uint64
	committed map[stockKey]model.InventoryRecord
	staged    map[*sqlx.Tx]map[stockKey]model.InventoryRecord
	movements []model.InventoryMovement
	pendingMv map[*sqlx.Tx][]model.InventoryMovement
}

func newMemStore() *memStore {
	return &memStore{
		committed: map[stockKey]model.InventoryRecord{},
		staged:    map[*sqlx.Tx]map[stockKey]model.InventoryRecord{},
		pendingMv: map[*sqlx.Tx][]model.InventoryMovement{},
	}
}

func (m *memStore) seed(hubID, productID uint64, total, reserved int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.committed[stockKey{hubID, productID}] = model.InventoryRecord{
		ID: m.nextID, HubID: hubID, ProductID: productID, TotalQuantity: total, ReservedQuantity: reserved,
	}
}

func (m *memStore) record(hubID, productID uint64) model.InventoryRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.committed[stockKey{hubID, productID}]
}

// TxRepository

func (m *memStore) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	tx := new(sqlx.Tx)
	m.mu.Lock()
	m.staged[tx] = map[stockKey]model.InventoryRecord{}
	m.mu.Unlock()
	return tx, nil
}

func (m *memStore) CommitTx(tx *sqlx.Tx) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer m.drop(tx)

	for k, rec := range m.staged[tx] {
		if m.committed[k].Version != rec.Version-1 {
			return errors.SetCustomError(constant.ErrConcurrentModification)
		}
	}
	for k, rec := range m.staged[tx] {
		m.committed[k] = rec
	}
	m.movements = append(m.movements, m.pendingMv[tx]...)
	return nil
}

func (m *memStore) RollbackTx(tx *sqlx.Tx) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drop(tx)
	return nil
}

func (m *memStore) drop(tx *sqlx.Tx) {
	delete(m.staged, tx)
	delete(m.pendingMv, tx)
}

// InventoryRepository

func (m *memStore) GetTx(ctx context.Context, tx *sqlx.Tx, hubID, productID uint64) (*model.InventoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := stockKey{hubID, productID}
	if rec, ok := m.staged[tx][k]; ok {
		return &rec, nil
	}
	rec, ok := m.committed[k]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memStore) EnsureTx(ctx context.Context, tx *sqlx.Tx, hubID, productID uint64) (*model.InventoryRecord, error) {
	m.mu.Lock()
	k := stockKey{hubID, productID}
	if _, ok := m.committed[k]; !ok {
		m.nextID++
		m.committed[k] = model.InventoryRecord{ID: m.nextID, HubID: hubID, ProductID: productID}
	}
	m.mu.Unlock()
	return m.GetTx(ctx, tx, hubID, productID)
}

func (m *memStore) UpdateTx(ctx context.Context, tx *sqlx.Tx, rec *model.InventoryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := stockKey{rec.HubID, rec.ProductID}
	current, ok := m.staged[tx][k]
	if !ok {
		current = m.committed[k]
	}
	if current.Version != rec.Version {
		return errors.SetCustomError(constant.ErrConcurrentModification)
	}
	rec.Version++
	if _, ok := m.staged[tx][k]; ok {
		// second write in the same tx keeps the original base version
		rec.Version = m.committed[k].Version + 1
	}
	m.staged[tx][k] = *rec
	return nil
}

func (m *memStore) LogMovementTx(ctx context.Context, tx *sqlx.Tx, mv *model.InventoryMovement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingMv[tx] = append(m.pendingMv[tx], *mv)
	return nil
}

func (m *memStore) Get(ctx context.Context, hubID, productID uint64) (*model.InventoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.committed[stockKey{hubID, productID}]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memStore) SumReservedByHub(ctx context.Context, hubID uint64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total int64
	for k, rec := range m.committed {
		if k.hubID == hubID {
			total += rec.ReservedQuantity
		}
	}
	return total, nil
}
