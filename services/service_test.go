package services

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeSender captures outbound messages so tests can assert on them.
// Dispatch runs in goroutines, so access is locked and assertions use
// require.Eventually.
type fakeSender struct {
	mu   sync.Mutex
	sent []sentMessage
}

type sentMessage struct {
	Phone string
	Text  string
}

func (f *fakeSender) Send(phone, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{Phone: phone, Text: text})
	return nil
}

func (f *fakeSender) messages() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]sentMessage, len(f.sent))
	copy(out, f.sent)
	return out
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Product{}, &entity.Complement{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{},
		&entity.PaymentMethod{}, &entity.PaymentStatus{}, &entity.Payment{},
		&entity.Deliverer{},
		&entity.StoreSettings{},
	))

	for _, name := range []string{
		entity.StatusPendingPayment, entity.StatusBeingPrepared,
		entity.StatusReadyForPickup, entity.StatusOnTheWay,
		entity.StatusDelivered, entity.StatusCanceled,
	} {
		require.NoError(t, db.Create(&entity.OrderStatus{StatusName: name}).Error)
	}
	for _, name := range []string{
		entity.PaymentMethodPix, entity.PaymentMethodCreditCard, entity.PaymentMethodCashOnDelivery,
	} {
		require.NoError(t, db.Create(&entity.PaymentMethod{MethodName: name}).Error)
	}
	for _, name := range []string{entity.PaymentStatusPending, entity.PaymentStatusPaid} {
		require.NoError(t, db.Create(&entity.PaymentStatus{StatusName: name}).Error)
	}

	settings := entity.StoreSettings{
		OpeningHours:            "14:00-23:00",
		StoreAddress:            "Rua das Palmeiras, 100 - Centro",
		DeliveryFee:             decimal.NewFromFloat(3.00),
		FreeDeliveryActive:      false,
		FreeDeliveryMinSubtotal: decimal.NewFromFloat(30.00),
		FreeDeliveryWeekdays:    datatypes.JSON([]byte("[]")),
	}
	require.NoError(t, db.Create(&settings).Error)

	return db
}

func newTestOrderService(t *testing.T, db *gorm.DB) (*OrderService, *fakeSender) {
	t.Helper()
	sender := &fakeSender{}
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewAddressRepository(db),
		repository.NewProductRepository(db),
		repository.NewSettingsRepository(db),
		repository.NewUserRepository(db),
		repository.NewDelivererRepository(db),
		NewNotifier(sender),
	)
	return svc, sender
}

// ---------------- fixtures ----------------

func createUser(t *testing.T, db *gorm.DB, email, role, phone string) *entity.User {
	t.Helper()
	u := entity.User{Email: email, Password: "x", Name: "Test " + role, PhoneNumber: phone, Role: role}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64) *entity.Product {
	t.Helper()
	p := entity.Product{Name: name, Price: decimal.NewFromFloat(price), Active: true}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func createDeliverer(t *testing.T, db *gorm.DB, name string, active bool) *entity.Deliverer {
	t.Helper()
	d := entity.Deliverer{Name: name, PhoneNumber: "5599000000", IsActive: active}
	require.NoError(t, db.Create(&d).Error)
	return &d
}

func createAddress(t *testing.T, db *gorm.DB, userID uint, isDefault bool) *entity.Address {
	t.Helper()
	a := entity.Address{
		Street:       "Rua A",
		Number:       "123",
		Neighborhood: "Centro",
		IsDefault:    isDefault,
		UserID:       userID,
	}
	require.NoError(t, db.Create(&a).Error)
	return &a
}

func addCartItem(t *testing.T, db *gorm.DB, userID, productID uint, qty int, blob datatypes.JSON) {
	t.Helper()
	cart := entity.Cart{UserID: userID}
	require.NoError(t, db.Where(entity.Cart{UserID: userID}).FirstOrCreate(&cart).Error)
	item := entity.CartItem{CartID: cart.ID, ProductID: productID, Quantity: qty, SelectedOptions: blob}
	require.NoError(t, db.Create(&item).Error)
}

func updateSettings(t *testing.T, db *gorm.DB, updates map[string]any) {
	t.Helper()
	require.NoError(t, db.Model(&entity.StoreSettings{}).Where("1 = 1").Updates(updates).Error)
}

func orderTotal(t *testing.T, db *gorm.DB, orderID uint) decimal.Decimal {
	t.Helper()
	var o entity.Order
	require.NoError(t, db.First(&o, orderID).Error)
	return o.TotalPrice
}

func paymentAmount(t *testing.T, db *gorm.DB, orderID uint) decimal.Decimal {
	t.Helper()
	var p entity.Payment
	require.NoError(t, db.Where("order_id = ?", orderID).First(&p).Error)
	return p.Amount
}

// assertEventuallyMessage waits for a message to the given phone whose text
// contains substr. Dispatch is asynchronous.
func assertEventuallyMessage(t *testing.T, sender *fakeSender, phone, substr string) {
	t.Helper()
	require.Eventually(t, func() bool {
		for _, m := range sender.messages() {
			if m.Phone == phone && strings.Contains(m.Text, substr) {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond, "no message to %s containing %q", phone, substr)
}
