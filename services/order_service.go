package services

import (
	"time"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatusIDs caches the order-status lookup ids, resolved once per process.
type StatusIDs struct {
	PendingPayment uint
	BeingPrepared  uint
	ReadyForPickup uint
	OnTheWay       uint
	Delivered      uint
	Canceled       uint
}

// PaymentIDs caches payment method/status lookup ids.
type PaymentIDs struct {
	Pix            uint
	CreditCard     uint
	CashOnDelivery uint

	StatusPending uint
	StatusPaid    uint
}

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	CartRepo     *repository.CartRepository
	AddrRepo     *repository.AddressRepository
	ProductRepo  *repository.ProductRepository
	SettingsRepo *repository.SettingsRepository
	UserRepo     *repository.UserRepository
	DelivRepo    *repository.DelivererRepository
	Notifier     *Notifier

	Status StatusIDs
	Pay    PaymentIDs

	// Now is swappable in tests (promotion weekday checks).
	Now func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	addrRepo *repository.AddressRepository,
	productRepo *repository.ProductRepository,
	settingsRepo *repository.SettingsRepository,
	userRepo *repository.UserRepository,
	delivRepo *repository.DelivererRepository,
	notifier *Notifier,
) *OrderService {
	s := &OrderService{
		DB:           db,
		Repo:         repo,
		CartRepo:     cartRepo,
		AddrRepo:     addrRepo,
		ProductRepo:  productRepo,
		SettingsRepo: settingsRepo,
		UserRepo:     userRepo,
		DelivRepo:    delivRepo,
		Notifier:     notifier,
		Now:          time.Now,
	}

	if id, err := repo.GetStatusIDByName(entity.StatusPendingPayment); err == nil {
		s.Status.PendingPayment = id
	}
	if id, err := repo.GetStatusIDByName(entity.StatusBeingPrepared); err == nil {
		s.Status.BeingPrepared = id
	}
	if id, err := repo.GetStatusIDByName(entity.StatusReadyForPickup); err == nil {
		s.Status.ReadyForPickup = id
	}
	if id, err := repo.GetStatusIDByName(entity.StatusOnTheWay); err == nil {
		s.Status.OnTheWay = id
	}
	if id, err := repo.GetStatusIDByName(entity.StatusDelivered); err == nil {
		s.Status.Delivered = id
	}
	if id, err := repo.GetStatusIDByName(entity.StatusCanceled); err == nil {
		s.Status.Canceled = id
	}

	if id, err := repo.GetPaymentMethodIDByName(entity.PaymentMethodPix); err == nil {
		s.Pay.Pix = id
	}
	if id, err := repo.GetPaymentMethodIDByName(entity.PaymentMethodCreditCard); err == nil {
		s.Pay.CreditCard = id
	}
	if id, err := repo.GetPaymentMethodIDByName(entity.PaymentMethodCashOnDelivery); err == nil {
		s.Pay.CashOnDelivery = id
	}
	if id, err := repo.GetPaymentStatusIDByName(entity.PaymentStatusPending); err == nil {
		s.Pay.StatusPending = id
	}
	if id, err := repo.GetPaymentStatusIDByName(entity.PaymentStatusPaid); err == nil {
		s.Pay.StatusPaid = id
	}

	return s
}

// ----- Checkout (cart → order) -----

type CheckoutReq struct {
	DeliveryType  string          `json:"deliveryType" binding:"required,oneof=delivery pickup"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=PIX CREDIT_CARD CASH_ON_DELIVERY"`
	AddressID     *uint           `json:"addressId"`
	Notes         string          `json:"notes"`
	NeedsChange   bool            `json:"needsChange"`
	ChangeAmount  decimal.Decimal `json:"changeAmount"`
}

// Checkout converts the customer's cart into an order + items + payment in
// one transaction, then clears the converted items. The cart is read inside
// the transaction and only the snapshotted items are removed, so an item
// added mid-checkout stays in the cart instead of vanishing unordered.
// Notifications fire after commit.
func (s *OrderService) Checkout(userID uint, req *CheckoutReq) (*entity.Order, error) {
	var (
		addr *entity.Address
		err  error
	)
	if req.DeliveryType == entity.DeliveryTypeDelivery {
		addr, err = s.AddrRepo.ResolveShipping(userID, req.AddressID)
		if err != nil {
			return nil, err
		}
		if addr == nil {
			return nil, &NoAddressError{Hint: "cadastre um endereço de entrega no seu perfil"}
		}
	}

	settings, err := s.SettingsRepo.Get()
	if err != nil {
		return nil, err
	}

	methodID, initialStatusID, payStatusID := s.Pay.CashOnDelivery, s.Status.BeingPrepared, s.Pay.StatusPaid
	switch req.PaymentMethod {
	case entity.PaymentMethodPix:
		// PIX waits for the admin-driven payment confirmation.
		methodID, initialStatusID, payStatusID = s.Pay.Pix, s.Status.PendingPayment, s.Pay.StatusPending
	case entity.PaymentMethodCreditCard:
		methodID = s.Pay.CreditCard
	}

	var order entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetCartWithItemsTx(tx, userID)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		// Freeze unit prices and compute the subtotal.
		subtotal := decimal.Zero
		units := make([]decimal.Decimal, len(cart.Items))
		for i, it := range cart.Items {
			units[i] = ResolveUnitPrice(it.Product.Price, it.SelectedOptions)
			subtotal = subtotal.Add(units[i].Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		fee := EffectiveDeliveryFee(subtotal, req.DeliveryType, s.Now(), settings)

		order = entity.Order{
			Code:            uuid.NewString(),
			UserID:          userID,
			OrderStatusID:   initialStatusID,
			DeliveryType:    req.DeliveryType,
			PaymentMethodID: methodID,
			TotalPrice:      subtotal.Add(fee),
			DeliveryFee:     fee,
			Notes:           req.Notes,
		}
		if addr != nil {
			order.ShippingStreet = addr.Street
			order.ShippingNumber = addr.Number
			order.ShippingComplement = addr.Complement
			order.ShippingNeighborhood = addr.Neighborhood
		}
		if req.PaymentMethod == entity.PaymentMethodCashOnDelivery && req.NeedsChange {
			order.NeedsChange = true
			order.ChangeAmount = req.ChangeAmount
		}

		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for i, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:                 order.ID,
				ProductID:               it.ProductID,
				Quantity:                it.Quantity,
				PriceAtOrder:            units[i],
				SelectedOptionsSnapshot: it.SelectedOptions,
				Complements:             it.Complements,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		payment := entity.Payment{
			Amount:          order.TotalPrice,
			OrderID:         order.ID,
			PaymentStatusID: payStatusID,
		}
		if req.PaymentMethod == entity.PaymentMethodPix {
			payment.TxRef = uuid.NewString()
		}
		if err := s.Repo.CreatePayment(tx, &payment); err != nil {
			return err
		}

		return s.CartRepo.RemoveItems(tx, cart.Items)
	})
	if err != nil {
		return nil, err
	}

	s.notifyCreated(&order)
	return &order, nil
}

func (s *OrderService) notifyCreated(o *entity.Order) {
	customer, err := s.UserRepo.FindByID(o.UserID)
	if err != nil {
		return
	}
	if o.OrderStatusID == s.Status.PendingPayment {
		s.Notifier.AwaitingPixPayment(o, customer.PhoneNumber)
		return
	}

	// Pre-confirmed payment: the kitchen starts right away.
	s.Notifier.OrderReceived(o, customer.PhoneNumber)
	if phone, err := s.UserRepo.FirstStaffPhone(); err == nil && phone != "" {
		if items, err := s.Repo.GetOrderItems(o.ID); err == nil {
			s.Notifier.KitchenTicket(o, phone, items)
		}
	}
}

// ----- Listings -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

type AdminOrderListOut struct {
	Items []repository.AdminOrderSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *OrderService) ListAll(statusID *uint, page, limit int) (*AdminOrderListOut, error) {
	items, total, err := s.Repo.ListOrders(statusID, page, limit)
	if err != nil {
		return nil, err
	}
	return &AdminOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}
