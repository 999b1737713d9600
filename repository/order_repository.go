package repository

import (
	"time"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderTx re-reads the order inside an open transaction so mutations
// never compute from a stale pre-transaction read.
func (r *OrderRepository) GetOrderTx(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID            uint            `json:"id"`
	Code          string          `json:"code"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	DeliveryType  string          `json:"deliveryType"`
	OrderStatusID uint            `json:"orderStatusId"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, code, total_price, delivery_type, order_status_id, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

type AdminOrderSummary struct {
	ID            uint            `json:"id"`
	Code          string          `json:"code"`
	UserID        uint            `json:"userId"`
	CustomerName  string          `json:"customerName"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	DeliveryType  string          `json:"deliveryType"`
	OrderStatusID uint            `json:"orderStatusId"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(statusID *uint, page, limit int) ([]AdminOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	dbCount := r.DB.Table("orders AS o").Where("o.deleted_at IS NULL")
	if statusID != nil && *statusID != 0 {
		dbCount = dbCount.Where("o.order_status_id = ?", *statusID)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		ID            uint
		Code          string
		UserID        uint
		TotalPrice    decimal.Decimal
		DeliveryType  string
		OrderStatusID uint
		CreatedAt     time.Time
		Name          string
	}
	db := r.DB.Table("orders AS o").
		Select("o.id, o.code, o.user_id, o.total_price, o.delivery_type, o.order_status_id, o.created_at, u.name").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.deleted_at IS NULL")
	if statusID != nil && *statusID != 0 {
		db = db.Where("o.order_status_id = ?", *statusID)
	}
	if err := db.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]AdminOrderSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, AdminOrderSummary{
			ID:            row.ID,
			Code:          row.Code,
			UserID:        row.UserID,
			CustomerName:  row.Name,
			TotalPrice:    row.TotalPrice,
			DeliveryType:  row.DeliveryType,
			OrderStatusID: row.OrderStatusID,
			CreatedAt:     row.CreatedAt,
		})
	}
	return out, total, nil
}

// UpdateStatusGuard applies a compare-and-swap status update: the write
// only lands when the order is still in fromID. Extra columns (deliverer)
// ride along in updates.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, fromID, toID uint, updates map[string]any) (int64, error) {
	if updates == nil {
		updates = map[string]any{}
	}
	updates["order_status_id"] = toID
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, fromID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdateTotal(tx *gorm.DB, orderID uint, total decimal.Decimal) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("total_price", total).Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).
		Preload("Product").
		Preload("Complements").
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) CountOrderItemsTx(tx *gorm.DB, orderID uint) (int64, error) {
	var count int64
	err := tx.Model(&entity.OrderItem{}).Where("order_id = ?", orderID).Count(&count).Error
	return count, err
}

func (r *OrderRepository) GetOrderItemTx(tx *gorm.DB, orderID, itemID uint) (*entity.OrderItem, error) {
	var oi entity.OrderItem
	err := tx.Where("id = ? AND order_id = ?", itemID, orderID).First(&oi).Error
	if err != nil {
		return nil, err
	}
	return &oi, nil
}

// DeleteOrderItem removes the item's complement links, then the item.
func (r *OrderRepository) DeleteOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	if err := tx.Model(oi).Association("Complements").Clear(); err != nil {
		return err
	}
	return tx.Delete(oi).Error
}

// ---------------- Payments ----------------

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *OrderRepository) GetPayment(orderID uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePaymentAmount keeps Payment.Amount mirroring Order.TotalPrice.
func (r *OrderRepository) UpdatePaymentAmount(tx *gorm.DB, orderID uint, amount decimal.Decimal) error {
	return tx.Model(&entity.Payment{}).
		Where("order_id = ?", orderID).
		Update("amount", amount).Error
}

func (r *OrderRepository) UpdatePaymentStatus(tx *gorm.DB, orderID, statusID uint) error {
	return tx.Model(&entity.Payment{}).
		Where("order_id = ?", orderID).
		Update("payment_status_id", statusID).Error
}

// ---------------- Lookups ----------------

func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.OrderStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}

func (r *OrderRepository) GetStatusNameByID(id uint) (string, error) {
	var row struct{ StatusName string }
	err := r.DB.Model(&entity.OrderStatus{}).
		Select("status_name").Where("id = ?", id).First(&row).Error
	return row.StatusName, err
}

func (r *OrderRepository) GetPaymentMethodIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.PaymentMethod{}).
		Select("id").Where("method_name = ?", name).First(&row).Error
	return row.ID, err
}

func (r *OrderRepository) GetPaymentMethodNameByID(id uint) (string, error) {
	var row struct{ MethodName string }
	err := r.DB.Model(&entity.PaymentMethod{}).
		Select("method_name").Where("id = ?", id).First(&row).Error
	return row.MethodName, err
}

func (r *OrderRepository) GetPaymentStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.PaymentStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}
