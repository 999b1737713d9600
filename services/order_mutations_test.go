package services

import (
	"testing"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOverrideTotal(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	customer := createUser(t, db, "ana@test.com", "customer", "5511999990000")
	o := checkoutOrder(t, db, svc, customer, entity.DeliveryTypePickup, entity.PaymentMethodCreditCard)
	require.True(t, o.TotalPrice.Equal(decimal.NewFromFloat(20.00)))

	o, err := svc.OverrideTotal(o.ID, decimal.NewFromFloat(17.00))
	require.NoError(t, err)
	assert.True(t, o.TotalPrice.Equal(decimal.NewFromFloat(17.00)))
	assert.True(t, paymentAmount(t, db, o.ID).Equal(decimal.NewFromFloat(17.00)))
}

func TestOverrideTotal_RejectsNonPositive(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	customer := createUser(t, db, "bia@test.com", "customer", "")
	o := checkoutOrder(t, db, svc, customer, entity.DeliveryTypePickup, entity.PaymentMethodCreditCard)

	_, err := svc.OverrideTotal(o.ID, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidTotal)
	_, err = svc.OverrideTotal(o.ID, decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, ErrInvalidTotal)

	// untouched
	assert.True(t, orderTotal(t, db, o.ID).Equal(decimal.NewFromFloat(20.00)))
}

func TestAddItem_PreservesManualOverride(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	customer := createUser(t, db, "carla@test.com", "customer", "")
	createAddress(t, db, customer.ID, true)
	o := checkoutOrder(t, db, svc, customer, entity.DeliveryTypeDelivery, entity.PaymentMethodCashOnDelivery)
	require.True(t, o.TotalPrice.Equal(decimal.NewFromFloat(23.00)))

	// admin grants a discount, then adds a 5.00 extra: the discount must
	// survive because the new item is added on top of the override
	_, err := svc.OverrideTotal(o.ID, decimal.NewFromFloat(20.00))
	require.NoError(t, err)

	extra := createProduct(t, db, "Água mineral", 5.00)
	o, err = svc.AddItem(o.ID, &AddItemReq{ProductID: extra.ID, Quantity: 1})
	require.NoError(t, err)

	assert.True(t, o.TotalPrice.Equal(decimal.NewFromFloat(25.00)), "total = %s", o.TotalPrice)
	assert.True(t, paymentAmount(t, db, o.ID).Equal(decimal.NewFromFloat(25.00)))
}

func TestAddItem_PriceOverride(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	customer := createUser(t, db, "davi@test.com", "customer", "")
	o := checkoutOrder(t, db, svc, customer, entity.DeliveryTypePickup, entity.PaymentMethodCreditCard)

	extra := createProduct(t, db, "Açaí especial", 15.00)
	custom := decimal.NewFromFloat(12.50)
	o, err := svc.AddItem(o.ID, &AddItemReq{ProductID: extra.ID, Quantity: 2, PriceOverride: &custom})
	require.NoError(t, err)

	// 20.00 + 2 x 12.50
	assert.True(t, o.TotalPrice.Equal(decimal.NewFromFloat(45.00)), "total = %s", o.TotalPrice)

	items, err := svc.Repo.GetOrderItems(o.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[1].PriceAtOrder.Equal(custom))
}

func TestRemoveItem_RestoresTotal(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	customer := createUser(t, db, "edu@test.com", "customer", "")
	o := checkoutOrder(t, db, svc, customer, entity.DeliveryTypePickup, entity.PaymentMethodCreditCard)
	before := o.TotalPrice

	extra := createProduct(t, db, "Água mineral", 5.00)
	o, err := svc.AddItem(o.ID, &AddItemReq{ProductID: extra.ID, Quantity: 1})
	require.NoError(t, err)
	require.True(t, o.TotalPrice.Equal(before.Add(decimal.NewFromFloat(5.00))))

	items, err := svc.Repo.GetOrderItems(o.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	o, err = svc.RemoveItem(o.ID, items[1].ID)
	require.NoError(t, err)
	assert.True(t, o.TotalPrice.Equal(before), "total = %s, want %s", o.TotalPrice, before)
	assert.True(t, paymentAmount(t, db, o.ID).Equal(before))
}

func TestRemoveItem_RefusesLastItem(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	customer := createUser(t, db, "nina@test.com", "customer", "")
	o := checkoutOrder(t, db, svc, customer, entity.DeliveryTypePickup, entity.PaymentMethodCreditCard)

	items, err := svc.Repo.GetOrderItems(o.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = svc.RemoveItem(o.ID, items[0].ID)
	assert.ErrorIs(t, err, ErrLastItem)

	// the item and the total are untouched
	items, err = svc.Repo.GetOrderItems(o.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.True(t, orderTotal(t, db, o.ID).Equal(decimal.NewFromFloat(20.00)))
}

func TestRemoveItem_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	customer := createUser(t, db, "fabi@test.com", "customer", "")
	o := checkoutOrder(t, db, svc, customer, entity.DeliveryTypePickup, entity.PaymentMethodCreditCard)

	_, err := svc.RemoveItem(o.ID, 9999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItem_ItemFromAnotherOrder(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	alice := createUser(t, db, "gil@test.com", "customer", "")
	bob := createUser(t, db, "hugo@test.com", "customer", "")
	a := checkoutOrder(t, db, svc, alice, entity.DeliveryTypePickup, entity.PaymentMethodCreditCard)
	b := checkoutOrder(t, db, svc, bob, entity.DeliveryTypePickup, entity.PaymentMethodCreditCard)

	itemsB, err := svc.Repo.GetOrderItems(b.ID)
	require.NoError(t, err)
	require.NotEmpty(t, itemsB)

	_, err = svc.RemoveItem(a.ID, itemsB[0].ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestMutations_UnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	_, err := svc.OverrideTotal(9999, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMutations_NotifyCustomer(t *testing.T) {
	db := setupTestDB(t)
	svc, sender := newTestOrderService(t, db)

	customer := createUser(t, db, "iris@test.com", "customer", "5511999990007")
	o := checkoutOrder(t, db, svc, customer, entity.DeliveryTypePickup, entity.PaymentMethodCreditCard)

	_, err := svc.OverrideTotal(o.ID, decimal.NewFromFloat(18.00))
	require.NoError(t, err)
	assertEventuallyMessage(t, sender, "5511999990007", "ajustado")

	extra := createProduct(t, db, "Água mineral", 5.00)
	_, err = svc.AddItem(o.ID, &AddItemReq{ProductID: extra.ID, Quantity: 1})
	require.NoError(t, err)
	assertEventuallyMessage(t, sender, "5511999990007", "Adicionamos")
}
