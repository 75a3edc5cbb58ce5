package order_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.GenerateOrderNumber(time.Now()),
		validFlatSubmission(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order_from_flat_submission", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.CashOnDelivery, o.PaymentMethod())
		assert.Equal(t, "Alice Smith", o.CustomerName())
		assert.Equal(t, "555-0100", o.PhoneNumber())
		assert.Equal(t, "1 Main St", o.Address())
		assert.InDelta(t, 19.00, o.TotalAmount(), 0.001)
		require.Len(t, o.Items(), 1)
		assert.Equal(t, "Margherita", o.Items()[0].Name)
		require.NoError(t, o.Validate())
	})

	t.Run("nested_and_flat_submissions_produce_the_same_record", func(t *testing.T) {
		id := kernel.NewUUID()
		number := order.GenerateOrderNumber(time.Now())

		nested := order.Submission{
			Customer: &order.CustomerInfo{Name: "Alice Smith", Phone: "555-0100", Address: "1 Main St"},
			Items:    []order.ItemInput{{Name: "Margherita", Quantity: 2, Price: 9.50}},
			Total:    floatPtr(19.00),
		}

		fromFlat, err := order.NewOrder(id, number, validFlatSubmission())
		require.NoError(t, err)
		fromNested, err := order.NewOrder(id, number, nested)
		require.NoError(t, err)

		assert.Equal(t, fromFlat, fromNested)
	})

	t.Run("rejects_invalid_submission", func(t *testing.T) {
		s := validFlatSubmission()
		s.Items = nil

		_, err := order.NewOrder(kernel.NewUUID(), order.GenerateOrderNumber(time.Now()), s)

		require.ErrorIs(t, err, order.ErrEmptyItemList)
	})

	t.Run("rejects_zero_value_id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, order.GenerateOrderNumber(time.Now()), validFlatSubmission())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("any_status_is_reachable_from_any_other", func(t *testing.T) {
		for _, from := range order.AllStatuses() {
			for _, to := range order.AllStatuses() {
				o := newTestOrder(t)
				require.NoError(t, o.ChangeStatus(from))

				require.NoError(t, o.ChangeStatus(to))
				assert.Equal(t, to, o.Status())
			}
		}
	})

	t.Run("value_outside_enumeration_leaves_order_unchanged", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusConfirmed))

		err := o.ChangeStatus(order.Status("shipped"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})
}

func TestOrder_ApplyAdminUpdate(t *testing.T) {
	driver := "Deniz"
	notes := "ring the bell twice"
	estimated := time.Now().Add(45 * time.Minute)

	t.Run("merges_provided_fields", func(t *testing.T) {
		o := newTestOrder(t)

		o.ApplyAdminUpdate(order.AdminUpdate{
			AssignedDriver:    &driver,
			Notes:             &notes,
			EstimatedDelivery: &estimated,
		})

		assert.Equal(t, driver, o.AssignedDriver())
		assert.Equal(t, notes, o.Notes())
		require.NotNil(t, o.EstimatedDelivery())
		assert.True(t, o.EstimatedDelivery().Equal(estimated))
	})

	t.Run("absent_fields_do_not_overwrite", func(t *testing.T) {
		o := newTestOrder(t)
		o.ApplyAdminUpdate(order.AdminUpdate{AssignedDriver: &driver, Notes: &notes})

		o.ApplyAdminUpdate(order.AdminUpdate{})

		assert.Equal(t, driver, o.AssignedDriver())
		assert.Equal(t, notes, o.Notes())
	})

	t.Run("blank_strings_do_not_overwrite", func(t *testing.T) {
		o := newTestOrder(t)
		o.ApplyAdminUpdate(order.AdminUpdate{AssignedDriver: &driver})

		blank := ""
		o.ApplyAdminUpdate(order.AdminUpdate{AssignedDriver: &blank})

		assert.Equal(t, driver, o.AssignedDriver())
	})
}

func TestOrder_MutationAdvancesUpdatedAt(t *testing.T) {
	staleUpdate := time.Now().Add(-time.Hour)

	restoreStale := func(t *testing.T) *order.Order {
		t.Helper()

		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:            kernel.NewUUID(),
			Number:        order.GenerateOrderNumber(time.Now()),
			CustomerName:  "Bob",
			PhoneNumber:   "555-0105",
			Address:       "2 Oak Ave",
			Items:         []order.Item{{Name: "Lahmacun", Quantity: 3, Price: 4}},
			TotalAmount:   12,
			PaymentMethod: order.CashOnDelivery,
			Status:        order.StatusPending,
			CreatedAt:     staleUpdate.Add(-time.Hour),
			UpdatedAt:     staleUpdate,
		})
		require.NoError(t, err)
		return o
	}

	t.Run("change_status", func(t *testing.T) {
		o := restoreStale(t)

		require.NoError(t, o.ChangeStatus(order.StatusConfirmed))

		assert.True(t, o.UpdatedAt().After(staleUpdate))
		assert.WithinDuration(t, time.Now(), o.UpdatedAt(), time.Second)
	})

	t.Run("apply_admin_update", func(t *testing.T) {
		o := restoreStale(t)
		driver := "Deniz"

		o.ApplyAdminUpdate(order.AdminUpdate{AssignedDriver: &driver})

		assert.True(t, o.UpdatedAt().After(staleUpdate))
		assert.WithinDuration(t, time.Now(), o.UpdatedAt(), time.Second)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("reconstructs_persisted_state", func(t *testing.T) {
		id := kernel.NewUUID()
		number := order.GenerateOrderNumber(time.Now())
		created := time.Now().Add(-time.Hour)
		updated := time.Now()

		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:            id,
			Number:        number,
			CustomerName:  "Bob",
			PhoneNumber:   "555-0105",
			Address:       "2 Oak Ave",
			Items:         []order.Item{{Name: "Lahmacun", Quantity: 3, Price: 4}},
			TotalAmount:   12,
			PaymentMethod: order.Online,
			Status:        order.StatusDelivered,
			Notes:         "left at door",
			CreatedAt:     created,
			UpdatedAt:     updated,
		})

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, "left at door", o.Notes())
		assert.True(t, o.CreatedAt().Equal(created))
		require.NoError(t, o.Validate())
	})

	t.Run("rejects_corrupt_status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:            kernel.NewUUID(),
			Number:        order.GenerateOrderNumber(time.Now()),
			PaymentMethod: order.CashOnDelivery,
			Status:        order.Status("archived"),
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	var notConstructed order.Order

	require.ErrorIs(t, notConstructed.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_ItemsReturnsCopy(t *testing.T) {
	o := newTestOrder(t)

	items := o.Items()
	items[0].Name = "tampered"

	assert.Equal(t, "Margherita", o.Items()[0].Name)
}
