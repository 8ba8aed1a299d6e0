package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/beyondgamer21/aura-elegance/internal/domain"
)

func lineTotal(item domain.CartItem) string {
	return decimal.NewFromFloat(item.Price).
		Mul(decimal.NewFromInt(int64(item.Quantity))).
		StringFixed(2)
}

// FormatWhatsAppMessage renders the plain-text order summary for the
// messaging channel.
func FormatWhatsAppMessage(order *domain.Order, items []domain.CartItem) string {
	var b strings.Builder

	b.WriteString("*New Order Received - Aura Elegance*\n\n")
	fmt.Fprintf(&b, "*Order ID:* #%d\n", order.ID)
	fmt.Fprintf(&b, "*Customer:* %s\n", order.CustomerName)
	fmt.Fprintf(&b, "*Email:* %s\n", order.CustomerEmail)
	fmt.Fprintf(&b, "*Phone:* %s\n\n", order.CustomerPhone)

	b.WriteString("*Delivery Address:*\n")
	fmt.Fprintf(&b, "%s\n%s, %s\n\n", order.CustomerAddress, order.CustomerCity, order.CustomerPostalCode)

	b.WriteString("*Items Ordered:*\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s x%d - $%s\n", item.Name, item.Quantity, lineTotal(item))
	}

	fmt.Fprintf(&b, "\n*Total Amount:* $%s\n", order.Total)

	if order.SpecialInstructions != "" {
		fmt.Fprintf(&b, "\n*Special Instructions:* %s\n", order.SpecialInstructions)
	}

	fmt.Fprintf(&b, "\n*Order Time:* %s\n", order.CreatedAt.Format(time.RFC1123))
	b.WriteString("\nPlease process this order as soon as possible!")

	return b.String()
}

// FormatEmailHTML renders the HTML order summary sent to the operator.
func FormatEmailHTML(order *domain.Order, items []domain.CartItem) string {
	var rows strings.Builder
	for _, item := range items {
		fmt.Fprintf(&rows, `<tr>
      <td style="padding: 8px; border-bottom: 1px solid #ddd;">%s</td>
      <td style="padding: 8px; border-bottom: 1px solid #ddd; text-align: center;">%d</td>
      <td style="padding: 8px; border-bottom: 1px solid #ddd; text-align: right;">$%.2f</td>
      <td style="padding: 8px; border-bottom: 1px solid #ddd; text-align: right;">$%s</td>
    </tr>`, item.Name, item.Quantity, item.Price, lineTotal(item))
	}

	instructions := ""
	if order.SpecialInstructions != "" {
		instructions = fmt.Sprintf("<p><strong>Special Instructions:</strong> %s</p>", order.SpecialInstructions)
	}

	return fmt.Sprintf(`
  <html>
    <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
      <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h1 style="color: #8B5CF6; text-align: center;">New Order Received</h1>

        <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
          <h2>Order Details</h2>
          <p><strong>Order ID:</strong> #%d</p>
          <p><strong>Order Date:</strong> %s</p>
        </div>

        <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
          <h2>Customer Information</h2>
          <p><strong>Name:</strong> %s</p>
          <p><strong>Email:</strong> %s</p>
          <p><strong>Phone:</strong> %s</p>
          <p><strong>Address:</strong><br>
             %s<br>
             %s, %s</p>
          %s
        </div>

        <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
          <h2>Order Items</h2>
          <table style="width: 100%%; border-collapse: collapse;">
            <thead>
              <tr style="background: #e9ecef;">
                <th style="padding: 12px; text-align: left; border-bottom: 2px solid #ddd;">Product</th>
                <th style="padding: 12px; text-align: center; border-bottom: 2px solid #ddd;">Qty</th>
                <th style="padding: 12px; text-align: right; border-bottom: 2px solid #ddd;">Price</th>
                <th style="padding: 12px; text-align: right; border-bottom: 2px solid #ddd;">Total</th>
              </tr>
            </thead>
            <tbody>
              %s
              <tr style="background: #e9ecef; font-weight: bold;">
                <td colspan="3" style="padding: 12px; text-align: right;">Order Total:</td>
                <td style="padding: 12px; text-align: right;">$%s</td>
              </tr>
            </tbody>
          </table>
        </div>

        <p style="text-align: center; color: #666; font-size: 14px;">
          This is an automated notification from Aura Elegance
        </p>
      </div>
    </body>
  </html>`,
		order.ID,
		order.CreatedAt.Format(time.RFC1123),
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.CustomerAddress,
		order.CustomerCity,
		order.CustomerPostalCode,
		instructions,
		rows.String(),
		order.Total,
	)
}
