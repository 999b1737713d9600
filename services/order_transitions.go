package services

import (
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"gorm.io/gorm"
)

// Single transition table for both update entry points, keyed by delivery
// type. canceled/delivered are terminal: no outgoing edges.
//
//	delivery: pending_payment → being_prepared → on_the_way → delivered
//	pickup:   pending_payment → being_prepared → ready_for_pickup → delivered
//	pending_payment|being_prepared → canceled
func (s *OrderService) nextStatuses(deliveryType string, fromID uint) []uint {
	switch fromID {
	case s.Status.PendingPayment:
		return []uint{s.Status.BeingPrepared, s.Status.Canceled}
	case s.Status.BeingPrepared:
		if deliveryType == entity.DeliveryTypePickup {
			return []uint{s.Status.ReadyForPickup, s.Status.Canceled}
		}
		return []uint{s.Status.OnTheWay, s.Status.Canceled}
	case s.Status.ReadyForPickup:
		return []uint{s.Status.Delivered}
	case s.Status.OnTheWay:
		return []uint{s.Status.Delivered}
	}
	return nil
}

func (s *OrderService) statusIDByName(name string) uint {
	switch name {
	case entity.StatusPendingPayment:
		return s.Status.PendingPayment
	case entity.StatusBeingPrepared:
		return s.Status.BeingPrepared
	case entity.StatusReadyForPickup:
		return s.Status.ReadyForPickup
	case entity.StatusOnTheWay:
		return s.Status.OnTheWay
	case entity.StatusDelivered:
		return s.Status.Delivered
	case entity.StatusCanceled:
		return s.Status.Canceled
	}
	return 0
}

// Transition moves an order to targetStatus (admin-only, enforced at the
// route). The write is a guarded compare-and-swap on the current status, so
// two concurrent transitions cannot both land.
func (s *OrderService) Transition(orderID uint, targetStatus string, delivererID *uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	targetID := s.statusIDByName(targetStatus)
	if targetID == 0 {
		return nil, ErrInvalidTransition
	}
	allowed := false
	for _, id := range s.nextStatuses(o.DeliveryType, o.OrderStatusID) {
		if id == targetID {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrInvalidTransition
	}

	var deliverer *entity.Deliverer
	updates := map[string]any{}
	if targetID == s.Status.OnTheWay {
		if delivererID == nil || *delivererID == 0 {
			return nil, ErrDelivererUnavailable
		}
		deliverer, err = s.DelivRepo.GetActive(*delivererID)
		if err != nil {
			return nil, ErrDelivererUnavailable
		}
		updates["deliverer_id"] = deliverer.ID
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.OrderStatusID, targetID, updates)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Someone else moved the order first.
			return ErrInvalidTransition
		}
		// PIX confirmation: pending_payment → being_prepared marks the
		// payment as paid in the same transaction.
		if o.OrderStatusID == s.Status.PendingPayment && targetID == s.Status.BeingPrepared {
			return s.Repo.UpdatePaymentStatus(tx, o.ID, s.Pay.StatusPaid)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fresh, err := s.Repo.GetOrder(o.ID)
	if err != nil {
		return nil, err
	}
	s.notifyTransition(fresh, o.OrderStatusID, targetID, deliverer)
	return fresh, nil
}

// notifyTransition fires the per-transition messages, after commit, best
// effort.
func (s *OrderService) notifyTransition(o *entity.Order, fromID, toID uint, deliverer *entity.Deliverer) {
	customer, err := s.UserRepo.FindByID(o.UserID)
	if err != nil {
		return
	}

	switch toID {
	case s.Status.BeingPrepared:
		if fromID == s.Status.PendingPayment {
			s.Notifier.PaymentConfirmed(o, customer.PhoneNumber)
			if phone, err := s.UserRepo.FirstStaffPhone(); err == nil && phone != "" {
				if items, err := s.Repo.GetOrderItems(o.ID); err == nil {
					s.Notifier.KitchenTicket(o, phone, items)
				}
			}
		}
	case s.Status.OnTheWay:
		if deliverer != nil {
			s.Notifier.OutForDelivery(o, customer.PhoneNumber, deliverer)
			if items, err := s.Repo.GetOrderItems(o.ID); err == nil {
				s.Notifier.DelivererBriefing(o, deliverer, customer, items)
			}
		}
	case s.Status.ReadyForPickup:
		storeAddress := ""
		if settings, err := s.SettingsRepo.Get(); err == nil {
			storeAddress = settings.StoreAddress
		}
		s.Notifier.ReadyForPickup(o, customer.PhoneNumber, storeAddress)
	case s.Status.Delivered:
		s.Notifier.Delivered(o, customer.PhoneNumber)
	case s.Status.Canceled:
		s.Notifier.Canceled(o, customer.PhoneNumber)
	}
}

// Cancel applies the cancellation policy: only the owning customer or an
// admin may cancel, and never once the order reached ready_for_pickup,
// on_the_way or delivered — not even an admin.
func (s *OrderService) Cancel(orderID, callerID uint, callerRole string) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	if callerRole != "admin" && o.UserID != callerID {
		return nil, ErrPermissionDenied
	}

	switch o.OrderStatusID {
	case s.Status.Canceled:
		return nil, ErrAlreadyCanceled
	case s.Status.ReadyForPickup, s.Status.OnTheWay, s.Status.Delivered:
		return nil, ErrCancelClosed
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.OrderStatusID, s.Status.Canceled, nil)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCancelClosed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fresh, err := s.Repo.GetOrder(o.ID)
	if err != nil {
		return nil, err
	}
	if customer, err := s.UserRepo.FindByID(fresh.UserID); err == nil {
		s.Notifier.Canceled(fresh, customer.PhoneNumber)
	}
	return fresh, nil
}
