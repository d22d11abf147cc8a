package inventory_test

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/cucumber/godog"
	appinventory "github.com/muhammadheryan/hub-fulfillment/application/inventory"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	cerr "github.com/muhammadheryan/hub-fulfillment/utils/errors"
)

var errorNames = map[string]constant.ErrorType{
	"INSUFFICIENT_STOCK":    constant.ErrInsufficientStock,
	"INSUFFICIENT_RESERVED": constant.ErrInsufficientReserved,
	"INVALID_RELEASE":       constant.ErrInvalidRelease,
	"DATA_INTEGRITY":        constant.ErrDataIntegrity,
}

type ledgerTestContext struct {
	store *memStore
	app   appinventory.InventoryApp
	err   error
}

func (c *ledgerTestContext) reset() {
	c.store = newMemStore()
	c.app = appinventory.NewInventoryApp(contendedConfig(), c.store, c.store)
	c.err = nil
}

func (c *ledgerTestContext) hubHoldsUnitsOfProductWithReserved(hubID, total, productID, reserved int) error {
	c.store.seed(uint64(hubID), uint64(productID), int64(total), int64(reserved))
	return nil
}

func (c *ledgerTestContext) iReserve(qty, productID, hubID int) error {
	c.err = c.app.Reserve(context.Background(), uint64(hubID), uint64(productID), int64(qty), model.MovementRef{})
	return nil
}

func (c *ledgerTestContext) iRelease(qty, productID, hubID int) error {
	c.err = c.app.Release(context.Background(), uint64(hubID), uint64(productID), int64(qty), model.MovementRef{})
	return nil
}

func (c *ledgerTestContext) iFulfill(qty, productID, hubID int) error {
	c.err = c.app.Fulfill(context.Background(), uint64(hubID), uint64(productID), int64(qty), model.MovementRef{})
	return nil
}

func (c *ledgerTestContext) iRestock(qty, productID, hubID int) error {
	c.err = c.app.Restock(context.Background(), uint64(hubID), uint64(productID), int64(qty), model.MovementRef{})
	return nil
}

func (c *ledgerTestContext) iReserveTheseItems(hubID int, table *godog.Table) error {
	lines := make([]model.StockLine, 0, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		productID, err := strconv.ParseUint(row.Cells[0].Value, 10, 64)
		if err != nil {
			return err
		}
		qty, err := strconv.ParseInt(row.Cells[1].Value, 10, 64)
		if err != nil {
			return err
		}
		lines = append(lines, model.StockLine{ProductID: productID, Quantity: qty})
	}

	ctx := context.Background()
	tx, _ := c.store.BeginTx(ctx)
	c.err = c.app.ReserveItemsTx(ctx, tx, uint64(hubID), lines, model.MovementRef{})
	if c.err != nil {
		return c.store.RollbackTx(tx)
	}
	c.err = c.store.CommitTx(tx)
	return nil
}

func (c *ledgerTestContext) iTransfer(qty, productID, fromHubID, toHubID int) error {
	ctx := context.Background()
	tx, _ := c.store.BeginTx(ctx)
	c.err = c.app.TransferTx(ctx, tx, uint64(fromHubID), uint64(toHubID), uint64(productID), int64(qty), model.MovementRef{})
	if c.err != nil {
		return c.store.RollbackTx(tx)
	}
	c.err = c.store.CommitTx(tx)
	return nil
}

func (c *ledgerTestContext) theOperationSucceeds() error {
	if c.err != nil {
		return fmt.Errorf("expected success, got %v", c.err)
	}
	return nil
}

func (c *ledgerTestContext) theOperationFailsWith(name string) error {
	want, ok := errorNames[name]
	if !ok {
		return fmt.Errorf("unknown error name %q", name)
	}
	if !cerr.IsType(c.err, want) {
		return fmt.Errorf("expected %s, got %v", name, c.err)
	}
	return nil
}

func (c *ledgerTestContext) hubHasTotalAndReserved(hubID, total, reserved, productID int) error {
	rec := c.store.record(uint64(hubID), uint64(productID))
	if rec.TotalQuantity != int64(total) || rec.ReservedQuantity != int64(reserved) {
		return fmt.Errorf("hub %d product %d: got total=%d reserved=%d, want total=%d reserved=%d",
			hubID, productID, rec.TotalQuantity, rec.ReservedQuantity, total, reserved)
	}
	return nil
}

func (c *ledgerTestContext) hubHasAvailable(hubID, available, productID int) error {
	got, err := c.app.GetAvailable(context.Background(), uint64(hubID), uint64(productID))
	if err != nil {
		return err
	}
	if got != int64(available) {
		return fmt.Errorf("available = %d, want %d", got, available)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &ledgerTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^hub (\d+) holds (\d+) units of product (\d+) with (\d+) reserved$`, tc.hubHoldsUnitsOfProductWithReserved)

	// When steps
	ctx.Step(`^I reserve (\d+) units of product (\d+) at hub (\d+)$`, tc.iReserve)
	ctx.Step(`^I release (\d+) units of product (\d+) at hub (\d+)$`, tc.iRelease)
	ctx.Step(`^I fulfill (\d+) units of product (\d+) at hub (\d+)$`, tc.iFulfill)
	ctx.Step(`^I restock (\d+) units of product (\d+) at hub (\d+)$`, tc.iRestock)
	ctx.Step(`^I reserve these items at hub (\d+):$`, tc.iReserveTheseItems)
	ctx.Step(`^I transfer (\d+) units of product (\d+) from hub (\d+) to hub (\d+)$`, tc.iTransfer)

	// Then steps
	ctx.Step(`^the operation succeeds$`, tc.theOperationSucceeds)
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
	ctx.Step(`^hub (\d+) has (\d+) total and (\d+) reserved of product (\d+)$`, tc.hubHasTotalAndReserved)
	ctx.Step(`^hub (\d+) has (\d+) available of product (\d+)$`, tc.hubHasAvailable)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
