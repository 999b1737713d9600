package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"github.com/shopspring/decimal"
)

// Sender delivers one message to one phone number. pkg/whatsapp implements
// it; tests swap in a fake.
type Sender interface {
	Send(phone, text string) error
}

// Notifier formats and fires the outbound messages tied to order events.
// Everything here runs after the database commit, in a goroutine, best
// effort: a failure is logged and swallowed, never surfaced to the caller.
type Notifier struct {
	Sender Sender
}

func NewNotifier(sender Sender) *Notifier {
	return &Notifier{Sender: sender}
}

func (n *Notifier) dispatch(orderID uint, phone, text string) {
	if n == nil || n.Sender == nil || phone == "" {
		return
	}
	go func() {
		if err := n.Sender.Send(phone, text); err != nil {
			log.Printf("notification failed (order %d): %v", orderID, err)
		}
	}()
}

func money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

func shippingLine(o *entity.Order) string {
	line := fmt.Sprintf("%s, %s - %s", o.ShippingStreet, o.ShippingNumber, o.ShippingNeighborhood)
	if o.ShippingComplement != "" {
		line += " (" + o.ShippingComplement + ")"
	}
	return line
}

func itemLines(items []entity.OrderItem) string {
	var b strings.Builder
	for _, it := range items {
		name := it.Product.Name
		if cp := ParseCustomPricing(it.SelectedOptionsSnapshot); cp != nil {
			if len(cp.Complements) > 0 {
				name += " (" + strings.Join(cp.Complements, ", ") + ")"
			}
		} else if len(it.Complements) > 0 {
			names := make([]string, 0, len(it.Complements))
			for _, c := range it.Complements {
				names = append(names, c.Name)
			}
			name += " (" + strings.Join(names, ", ") + ")"
		}
		fmt.Fprintf(&b, "- %dx %s\n", it.Quantity, name)
	}
	return b.String()
}

// ---------------- Customer messages ----------------

func (n *Notifier) OrderReceived(o *entity.Order, customerPhone string) {
	text := fmt.Sprintf(
		"Pedido %s recebido! Total: %s. Vamos avisar quando ele sair para entrega.",
		o.Code, money(o.TotalPrice))
	if o.DeliveryType == entity.DeliveryTypePickup {
		text = fmt.Sprintf(
			"Pedido %s recebido! Total: %s. Vamos avisar quando estiver pronto para retirada.",
			o.Code, money(o.TotalPrice))
	}
	n.dispatch(o.ID, customerPhone, text)
}

func (n *Notifier) AwaitingPixPayment(o *entity.Order, customerPhone string) {
	n.dispatch(o.ID, customerPhone, fmt.Sprintf(
		"Pedido %s registrado! Aguardando a confirmação do pagamento PIX de %s.",
		o.Code, money(o.TotalPrice)))
}

func (n *Notifier) PaymentConfirmed(o *entity.Order, customerPhone string) {
	n.dispatch(o.ID, customerPhone, fmt.Sprintf(
		"Pagamento do pedido %s confirmado! Já estamos preparando tudo.", o.Code))
}

func (n *Notifier) OutForDelivery(o *entity.Order, customerPhone string, d *entity.Deliverer) {
	n.dispatch(o.ID, customerPhone, fmt.Sprintf(
		"Seu pedido %s saiu para entrega!\nEndereço: %s\nTaxa de entrega: %s\nEntregador: %s (%s)",
		o.Code, shippingLine(o), money(o.DeliveryFee), d.Name, d.PhoneNumber))
}

func (n *Notifier) ReadyForPickup(o *entity.Order, customerPhone, storeAddress string) {
	n.dispatch(o.ID, customerPhone, fmt.Sprintf(
		"Seu pedido %s está pronto para retirada!\nNos encontre em: %s", o.Code, storeAddress))
}

func (n *Notifier) Delivered(o *entity.Order, customerPhone string) {
	n.dispatch(o.ID, customerPhone, fmt.Sprintf(
		"Pedido %s entregue. Obrigado pela preferência! 💜", o.Code))
}

func (n *Notifier) Canceled(o *entity.Order, customerPhone string) {
	n.dispatch(o.ID, customerPhone, fmt.Sprintf(
		"Seu pedido %s foi cancelado. Qualquer dúvida, fale com a gente.", o.Code))
}

func (n *Notifier) TotalAdjusted(o *entity.Order, customerPhone string, oldTotal, newTotal decimal.Decimal) {
	n.dispatch(o.ID, customerPhone, fmt.Sprintf(
		"O total do pedido %s foi ajustado de %s para %s.",
		o.Code, money(oldTotal), money(newTotal)))
}

func (n *Notifier) ItemAdded(o *entity.Order, customerPhone, productName string, qty int, newTotal decimal.Decimal) {
	n.dispatch(o.ID, customerPhone, fmt.Sprintf(
		"Adicionamos %dx %s ao pedido %s. Novo total: %s.",
		qty, productName, o.Code, money(newTotal)))
}

func (n *Notifier) ItemRemoved(o *entity.Order, customerPhone, productName string, newTotal decimal.Decimal) {
	n.dispatch(o.ID, customerPhone, fmt.Sprintf(
		"Removemos %s do pedido %s. Novo total: %s.",
		productName, o.Code, money(newTotal)))
}

// ---------------- Staff messages ----------------

func (n *Notifier) KitchenTicket(o *entity.Order, kitchenPhone string, items []entity.OrderItem) {
	mode := "Entrega"
	if o.DeliveryType == entity.DeliveryTypePickup {
		mode = "Retirada"
	}
	n.dispatch(o.ID, kitchenPhone, fmt.Sprintf(
		"Novo pedido %s (%s):\n%sTotal: %s",
		o.Code, mode, itemLines(items), money(o.TotalPrice)))
}

func (n *Notifier) DelivererBriefing(o *entity.Order, d *entity.Deliverer, customer *entity.User, items []entity.OrderItem) {
	n.dispatch(o.ID, d.PhoneNumber, fmt.Sprintf(
		"Corrida para o pedido %s:\nCliente: %s (%s)\nEndereço: %s\n%s",
		o.Code, customer.Name, customer.PhoneNumber, shippingLine(o), itemLines(items)))
}
