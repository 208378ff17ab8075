package handoff

import (
	"fmt"
	"strings"

	"github.com/foodyatra/foodyatra/internal/coupon"
	"github.com/foodyatra/foodyatra/internal/models"
)

// Message renders the human-readable confirmation sent to the
// restaurant's messaging channel once an order is created. The core's
// job ends at producing this payload; a human confirms availability on
// the other side.
func Message(o models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*New Order #%s* 🛵\n", o.ID)
	b.WriteString("------------------\n")
	fmt.Fprintf(&b, "*Customer:* %s\n", o.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n", o.CustomerPhone)
	fmt.Fprintf(&b, "Address: %s\n", o.CustomerAddress)
	fmt.Fprintf(&b, "Village: %s\n\n", o.Zone)

	b.WriteString("*Order:*\n")
	for _, line := range o.ItemLines {
		if line.Dish.Price.OnRequest {
			fmt.Fprintf(&b, "%d x %s (Price on Request)\n", line.Quantity, line.Dish.Name)
		} else {
			fmt.Fprintf(&b, "%d x %s (₹%d)\n", line.Quantity, line.Dish.Name, line.Dish.Price.Amount*line.Quantity)
		}
	}
	b.WriteString("------------------\n")

	if o.Discount > 0 {
		fmt.Fprintf(&b, "*Total: ₹%d (Coupon %s Applied)*\n", o.TotalAmount, coupon.FirstOrderCode)
	} else {
		fmt.Fprintf(&b, "*Total: ₹%d*\n", o.TotalAmount)
	}
	fmt.Fprintf(&b, "Delivery Fee: ₹%d\n", o.DeliveryFee)
	fmt.Fprintf(&b, "Platform Fee: ₹%d\n\n", o.PlatformFee)

	b.WriteString("Please confirm availability and time.")
	return b.String()
}
