package inventory

import (
	"testing"
	"time"

	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyReserve(t *testing.T) {
	rec := &model.InventoryRecord{TotalQuantity: 10, ReservedQuantity: 4}

	require.NoError(t, applyReserve(rec, 6))
	assert.Equal(t, int64(10), rec.ReservedQuantity)
	assert.Equal(t, int64(0), rec.Available())

	err := applyReserve(rec, 1)
	assert.True(t, errors.IsType(err, constant.ErrInsufficientStock))
	assert.Equal(t, int64(10), rec.ReservedQuantity)
}

func TestApplyRelease(t *testing.T) {
	rec := &model.InventoryRecord{TotalQuantity: 10, ReservedQuantity: 4}

	assert.False(t, applyRelease(rec, 3))
	assert.Equal(t, int64(1), rec.ReservedQuantity)

	assert.True(t, applyRelease(rec, 5))
	assert.Equal(t, int64(0), rec.ReservedQuantity)
	assert.Equal(t, int64(10), rec.TotalQuantity)
}

func TestApplyFulfill(t *testing.T) {
	rec := &model.InventoryRecord{TotalQuantity: 10, ReservedQuantity: 4}

	require.NoError(t, applyFulfill(rec, 4))
	assert.Equal(t, int64(6), rec.TotalQuantity)
	assert.Equal(t, int64(0), rec.ReservedQuantity)

	err := applyFulfill(rec, 1)
	assert.True(t, errors.IsType(err, constant.ErrInsufficientReserved))
	assert.Equal(t, int64(6), rec.TotalQuantity)
}

func TestApplyRestock(t *testing.T) {
	rec := &model.InventoryRecord{TotalQuantity: 2, ReservedQuantity: 2}
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	applyRestock(rec, 8, now)

	assert.Equal(t, int64(10), rec.TotalQuantity)
	assert.Equal(t, int64(8), rec.Available())
	require.NotNil(t, rec.LastRestocked)
	assert.True(t, rec.LastRestocked.Equal(now))
}

func TestCheckIntegrity(t *testing.T) {
	assert.NoError(t, checkIntegrity(&model.InventoryRecord{TotalQuantity: 5, ReservedQuantity: 5}))
	assert.True(t, errors.IsType(checkIntegrity(&model.InventoryRecord{TotalQuantity: 5, ReservedQuantity: 6}), constant.ErrDataIntegrity))
	assert.True(t, errors.IsType(checkIntegrity(&model.InventoryRecord{TotalQuantity: 5, ReservedQuantity: -1}), constant.ErrDataIntegrity))
}

func TestNormalizeLines(t *testing.T) {
	got, err := normalizeLines([]model.StockLine{
		{ProductID: 9, Quantity: 1},
		{ProductID: 3, Quantity: 2},
		{ProductID: 9, Quantity: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, []model.StockLine{{ProductID: 3, Quantity: 2}, {ProductID: 9, Quantity: 5}}, got)

	_, err = normalizeLines([]model.StockLine{{ProductID: 3, Quantity: 0}})
	assert.True(t, errors.IsType(err, constant.ErrInvalidRequest))
}

func TestMovementCarriesReference(t *testing.T) {
	before := model.InventoryRecord{HubID: 1, ProductID: 2, TotalQuantity: 5, ReservedQuantity: 1}
	after := before
	after.ReservedQuantity = 3
	actor := uint64(77)

	m := movement(before, &after, constant.MovementReserve, 2, model.MovementRef{ReferenceType: "order", ReferenceID: 12, ActorID: &actor}, time.Now())

	require.NotNil(t, m.ReferenceType)
	require.NotNil(t, m.ReferenceID)
	assert.Equal(t, "order", *m.ReferenceType)
	assert.Equal(t, uint64(12), *m.ReferenceID)
	assert.Equal(t, int64(1), m.ReservedBefore)
	assert.Equal(t, int64(3), m.ReservedAfter)
	assert.Equal(t, &actor, m.CreatedBy)

	m = movement(before, &after, constant.MovementReserve, 2, model.MovementRef{}, time.Now())
	assert.Nil(t, m.ReferenceType)
	assert.Nil(t, m.ReferenceID)
}
