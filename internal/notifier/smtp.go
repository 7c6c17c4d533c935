package notifier

import (
	"context"
	"fmt"
	"net"
	"net/smtp"

	"supplychain-core/internal/domain"
)

// SMTPNotifier emails purchase orders to suppliers over plain SMTP.
// The context deadline bounds the whole exchange including the dial.
type SMTPNotifier struct {
	host string
	port string
	from string
}

// NewSMTPNotifier creates an SMTP-backed SupplierNotifier
func NewSMTPNotifier(host, port, from string) *SMTPNotifier {
	return &SMTPNotifier{host: host, port: port, from: from}
}

// NotifySupplier sends the order to the supplier's contact email
func (n *SMTPNotifier) NotifySupplier(ctx context.Context, order *domain.PurchaseOrder) error {
	if order.Product == nil || order.Product.Supplier == nil {
		return ErrIncompleteOrder
	}
	supplier := order.Product.Supplier

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(n.host, n.port))
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return fmt.Errorf("failed to set SMTP deadline: %w", err)
		}
	}

	client, err := smtp.NewClient(conn, n.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if err := client.Mail(n.from); err != nil {
		return fmt.Errorf("SMTP MAIL failed: %w", err)
	}
	if err := client.Rcpt(supplier.Email); err != nil {
		return fmt.Errorf("SMTP RCPT failed: %w", err)
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("SMTP DATA failed: %w", err)
	}

	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Purchase Order %s\r\n\r\n"+
			"Dear %s,\r\n\r\n"+
			"Please fulfil the following purchase order:\r\n\r\n"+
			"  Product:  %s (SKU %s)\r\n"+
			"  Quantity: %d\r\n"+
			"  Total:    %.2f\r\n\r\n"+
			"Regards,\r\nWarehouse Purchasing\r\n",
		n.from, supplier.Email, order.ID, supplier.Name,
		order.Product.Name, order.Product.SKU, order.Quantity, order.TotalCost,
	)

	if _, err := wc.Write([]byte(body)); err != nil {
		return fmt.Errorf("failed to write SMTP body: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close SMTP body: %w", err)
	}

	return client.Quit()
}
