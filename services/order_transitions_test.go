package services

import (
	"testing"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// checkoutOrder creates a paid order in being_prepared (or pending_payment
// for PIX) straight through the converter.
func checkoutOrder(t *testing.T, db *gorm.DB, svc *OrderService, customer *entity.User, deliveryType, method string) *entity.Order {
	t.Helper()
	product := createProduct(t, db, "Açaí 500ml", 10.00)
	addCartItem(t, db, customer.ID, product.ID, 2, nil)
	o, err := svc.Checkout(customer.ID, &CheckoutReq{
		DeliveryType:  deliveryType,
		PaymentMethod: method,
	})
	require.NoError(t, err)
	return o
}

func TestTransition_DeliveryHappyPath(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	customer := createUser(t, db, "ana@test.com", "customer", "5511999990000")
	createAddress(t, db, customer.ID, true)
	deliverer := createDeliverer(t, db, "Marcos", true)
	o := checkoutOrder(t, db, svc, customer, entity.DeliveryTypeDelivery, entity.PaymentMethodCashOnDelivery)
	require.Equal(t, svc.Status.BeingPrepared, o.OrderStatusID)

	o, err := svc.Transition(o.ID, entity.StatusOnTheWay, &deliverer.ID)
	require.NoError(t, err)
	assert.Equal(t, svc.Status.OnTheWay, o.OrderStatusID)
	require.NotNil(t, o.DelivererID)
	assert.Equal(t, deliverer.ID, *o.DelivererID)

	o, err = svc.Transition(o.ID, entity.StatusDelivered, nil)
	require.NoError(t, err)
	assert.Equal(t, svc.Status.Delivered, o.OrderStatusID)
}

func TestTransition_PickupHappyPath(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	customer := createUser(t, db, "bia@test.com", "customer", "")
	o := checkoutOrder(t, db, svc, customer, entity.DeliveryTypePickup, entity.PaymentMethodCreditCard)

	o, err := svc.Transition(o.ID, entity.StatusReadyForPickup, nil)
	require.NoError(t, err)
	assert.Equal(t, svc.Status.ReadyForPickup, o.OrderStatusID)

	o, err = svc.Transition(o.ID, entity.StatusDelivered, nil)
	require.NoError(t, err)
	assert.Equal(t, svc.Status.Delivered, o.OrderStatusID)
}

func TestTransition_OnTheWayRequiresActiveDeliverer(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	customer := createUser(t, db, "carla@test.com", "customer", "")
	createAddress(t, db, customer.ID, true)
	inactive := createDeliverer(t, db, "Paulo", false)
	o := checkoutOrder(t, db, svc, customer, entity.DeliveryTypeDelivery, entity.PaymentMethodCashOnDelivery)

	_, err := svc.Transition(o.ID, entity.StatusOnTheWay, nil)
	assert.ErrorIs(t, err, ErrDelivererUnavailable)

	_, err = svc.Transition(o.ID, entity.StatusOnTheWay, &inactive.ID)
	assert.ErrorIs(t, err, ErrDelivererUnavailable)

	// the order did not move
	var fresh entity.Order
	require.NoError(t, db.First(&fresh, o.ID).Error)
	assert.Equal(t, svc.Status.BeingPrepared, fresh.OrderStatusID)
}

func TestTransition_RejectsSkippedSteps(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	customer := createUser(t, db, "davi@test.com", "customer", "")
	createAddress(t, db, customer.ID, true)
	delivery := checkoutOrder(t, db, svc, customer, entity.DeliveryTypeDelivery, entity.PaymentMethodCashOnDelivery)
	pickup := checkoutOrder(t, db, svc, customer, entity.DeliveryTypePickup, entity.PaymentMethodCashOnDelivery)

	// being_prepared → delivered skips a step on both paths
	_, err := svc.Transition(delivery.ID, entity.StatusDelivered, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.Transition(pickup.ID, entity.StatusDelivered, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// on_the_way does not exist on the pickup path
	deliverer := createDeliverer(t, db, "Rita", true)
	_, err = svc.Transition(pickup.ID, entity.StatusOnTheWay, &deliverer.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// ready_for_pickup does not exist on the delivery path
	_, err = svc.Transition(delivery.ID, entity.StatusReadyForPickup, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.Transition(delivery.ID, "no-such-status", nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_PixConfirmationMarksPaymentPaid(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	customer := createUser(t, db, "edu@test.com", "customer", "5511999990004")
	o := checkoutOrder(t, db, svc, customer, entity.DeliveryTypePickup, entity.PaymentMethodPix)
	require.Equal(t, svc.Status.PendingPayment, o.OrderStatusID)

	o, err := svc.Transition(o.ID, entity.StatusBeingPrepared, nil)
	require.NoError(t, err)
	assert.Equal(t, svc.Status.BeingPrepared, o.OrderStatusID)

	var payment entity.Payment
	require.NoError(t, db.Where("order_id = ?", o.ID).First(&payment).Error)
	assert.Equal(t, svc.Pay.StatusPaid, payment.PaymentStatusID)
}

func TestTransition_TerminalStatesHaveNoExit(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	customer := createUser(t, db, "fabi@test.com", "customer", "")
	o := checkoutOrder(t, db, svc, customer, entity.DeliveryTypePickup, entity.PaymentMethodCreditCard)

	_, err := svc.Cancel(o.ID, customer.ID, "customer")
	require.NoError(t, err)

	_, err = svc.Transition(o.ID, entity.StatusBeingPrepared, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancel_OwnerAndAdminOnly(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	owner := createUser(t, db, "gil@test.com", "customer", "5511999990005")
	stranger := createUser(t, db, "hugo@test.com", "customer", "")
	admin := createUser(t, db, "admin@test.com", "admin", "")
	o := checkoutOrder(t, db, svc, owner, entity.DeliveryTypePickup, entity.PaymentMethodCreditCard)

	_, err := svc.Cancel(o.ID, stranger.ID, "customer")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	canceled, err := svc.Cancel(o.ID, admin.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, svc.Status.Canceled, canceled.OrderStatusID)
}

func TestCancel_AlreadyCanceled(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	owner := createUser(t, db, "iris@test.com", "customer", "")
	o := checkoutOrder(t, db, svc, owner, entity.DeliveryTypePickup, entity.PaymentMethodCreditCard)

	_, err := svc.Cancel(o.ID, owner.ID, "customer")
	require.NoError(t, err)

	_, err = svc.Cancel(o.ID, owner.ID, "customer")
	assert.ErrorIs(t, err, ErrAlreadyCanceled)
}

func TestCancel_ClosedOncePastPreparation(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestOrderService(t, db)

	owner := createUser(t, db, "joao@test.com", "customer", "")
	admin := createUser(t, db, "admin2@test.com", "admin", "")
	o := checkoutOrder(t, db, svc, owner, entity.DeliveryTypePickup, entity.PaymentMethodCreditCard)

	_, err := svc.Transition(o.ID, entity.StatusReadyForPickup, nil)
	require.NoError(t, err)

	// not even an admin can cancel now
	_, err = svc.Cancel(o.ID, owner.ID, "customer")
	assert.ErrorIs(t, err, ErrCancelClosed)
	_, err = svc.Cancel(o.ID, admin.ID, "admin")
	assert.ErrorIs(t, err, ErrCancelClosed)
}

func TestTransition_NotifiesCustomer(t *testing.T) {
	db := setupTestDB(t)
	svc, sender := newTestOrderService(t, db)

	customer := createUser(t, db, "karla@test.com", "customer", "5511999990006")
	o := checkoutOrder(t, db, svc, customer, entity.DeliveryTypePickup, entity.PaymentMethodCreditCard)

	_, err := svc.Transition(o.ID, entity.StatusReadyForPickup, nil)
	require.NoError(t, err)

	assertEventuallyMessage(t, sender, "5511999990006", "retirada")
}
