package orders

import (
	"fmt"
	"net/url"
	"strings"

	"dimzia-storefront/models"
)

// Summary renders the plain-text order message sent through the messaging
// link. Menu prices are in dollars, the delivery fee in rupiah minor units.
func Summary(order *models.Order) string {
	var b strings.Builder

	b.WriteString("*New Order from Dimzia Dimsum*\n")
	b.WriteString("-----------------------------\n")
	fmt.Fprintf(&b, "*Order Number:* #%d\n", order.OrderNumber)
	fmt.Fprintf(&b, "*Name:* %s\n", order.CustomerName)
	fmt.Fprintf(&b, "*Delivery Method:* %s\n", order.Method.Label())
	if order.Method == models.MethodDelivery {
		fmt.Fprintf(&b, "*Address:* %s\n", order.Address)
		if order.DeliveryCost > 0 {
			fmt.Fprintf(&b, "*Distance:* %.2f km\n", order.DistanceKm)
			fmt.Fprintf(&b, "*Delivery:* Rp %d\n", order.DeliveryCost)
		}
	}
	b.WriteString("*Order Details:*\n")
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "%dx %s ($%.2f)\n", line.Quantity, line.Name, line.Price*float64(line.Quantity))
	}
	b.WriteString("-----------------------------\n")
	fmt.Fprintf(&b, "*Total Items:* %d\n", order.TotalItems)
	fmt.Fprintf(&b, "*Total Price:* $%.2f", order.Subtotal)

	return b.String()
}

// WhatsAppLink builds the templated outbound URL; the application never
// learns whether the message was delivered.
func WhatsAppLink(phone, text string) string {
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(text)
}
