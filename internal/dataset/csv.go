package dataset

import (
	"strconv"
)

// Table is one delimited output file: a fixed header and pre-encoded rows.
// Absent values (root category parents, undelivered shipments, unresolved
// tickets) encode as the empty string.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

const timeLayout = "2006-01-02T15:04:05"

// Tables returns every table of the dataset in its generation order, ready
// for the writer. Column names and file names are stable and part of the
// output contract.
func (ds *Dataset) Tables() []Table {
	return []Table{
		ds.customerTable(),
		ds.addressTable(),
		ds.categoryTable(),
		ds.productTable(),
		ds.translationTable(),
		ds.orderTable(),
		ds.orderItemTable(),
		ds.paymentTable(),
		ds.shipmentTable(),
		ds.reviewTable(),
		ds.ticketTable(),
	}
}

func (ds *Dataset) customerTable() Table {
	rows := make([][]string, 0, len(ds.Customers))
	for _, c := range ds.Customers {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.FullName,
			c.Email,
			c.Phone,
			c.Locale.String(),
			c.Status.String(),
			c.CreatedAt.Format(timeLayout),
			strconv.Itoa(c.LoyaltyPoints),
		})
	}
	return Table{
		Name:   "customer",
		Header: []string{"customer_id", "full_name", "email", "phone", "locale", "status", "created_at", "loyalty_points"},
		Rows:   rows,
	}
}

func (ds *Dataset) addressTable() Table {
	rows := make([][]string, 0, len(ds.Addresses))
	for _, a := range ds.Addresses {
		rows = append(rows, []string{
			strconv.Itoa(a.ID),
			strconv.Itoa(a.CustomerID),
			a.Type.String(),
			a.Line1,
			a.Line2,
			a.City,
			a.Region,
			a.PostalCode,
			a.Country,
			formatFloat(a.Latitude),
			formatFloat(a.Longitude),
		})
	}
	return Table{
		Name:   "customer_address",
		Header: []string{"address_id", "customer_id", "address_type", "line1", "line2", "city", "region", "postal_code", "country", "latitude", "longitude"},
		Rows:   rows,
	}
}

func (ds *Dataset) categoryTable() Table {
	rows := make([][]string, 0, len(ds.Categories))
	for _, c := range ds.Categories {
		parent := ""
		if c.ParentID != nil {
			parent = strconv.Itoa(*c.ParentID)
		}
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			parent,
			c.Slug,
			c.DisplayNameEN,
			c.DisplayNameZH,
			c.DisplayNameES,
			c.Description,
			c.CreatedAt.Format(timeLayout),
		})
	}
	return Table{
		Name:   "category",
		Header: []string{"category_id", "parent_category_id", "slug", "display_name_en", "display_name_zh", "display_name_es", "description", "created_at"},
		Rows:   rows,
	}
}

func (ds *Dataset) productTable() Table {
	rows := make([][]string, 0, len(ds.Products))
	for _, p := range ds.Products {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			strconv.Itoa(p.CategoryID),
			p.SKU,
			p.Price.String(),
			p.Cost.String(),
			p.Currency.String(),
			p.Status.String(),
			p.CreatedAt.Format(timeLayout),
		})
	}
	return Table{
		Name:   "products",
		Header: []string{"product_id", "category_id", "sku", "price", "cost", "currency", "status", "created_at"},
		Rows:   rows,
	}
}

func (ds *Dataset) translationTable() Table {
	rows := make([][]string, 0, len(ds.Translations))
	for _, t := range ds.Translations {
		rows = append(rows, []string{
			strconv.Itoa(t.ProductID),
			t.Locale.String(),
			t.Name,
			t.Description,
		})
	}
	return Table{
		Name:   "product_translation",
		Header: []string{"product_id", "locale", "name", "description"},
		Rows:   rows,
	}
}

func (ds *Dataset) orderTable() Table {
	rows := make([][]string, 0, len(ds.Orders))
	for _, o := range ds.Orders {
		rows = append(rows, []string{
			strconv.Itoa(o.ID),
			strconv.Itoa(o.CustomerID),
			o.OrderDate.Format(timeLayout),
			o.Status.String(),
			o.TotalAmount.String(),
			o.Currency.String(),
			strconv.Itoa(o.ShippingAddressID),
			strconv.Itoa(o.BillingAddressID),
		})
	}
	return Table{
		Name:   "order",
		Header: []string{"order_id", "customer_id", "order_date", "status", "total_amount", "currency", "shipping_address_id", "billing_address_id"},
		Rows:   rows,
	}
}

func (ds *Dataset) orderItemTable() Table {
	rows := make([][]string, 0, len(ds.OrderItems))
	for _, item := range ds.OrderItems {
		rows = append(rows, []string{
			strconv.Itoa(item.ID),
			strconv.Itoa(item.OrderID),
			strconv.Itoa(item.ProductID),
			strconv.Itoa(item.Quantity),
			item.UnitPrice.String(),
			item.Discount.String(),
		})
	}
	return Table{
		Name:   "order_items",
		Header: []string{"order_item_id", "order_id", "product_id", "quantity", "unit_price", "discount_percent"},
		Rows:   rows,
	}
}

func (ds *Dataset) paymentTable() Table {
	rows := make([][]string, 0, len(ds.Payments))
	for _, p := range ds.Payments {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			strconv.Itoa(p.OrderID),
			p.Method.String(),
			p.Status.String(),
			p.Amount.String(),
			p.TransactionReference,
			p.PaidAt.Format(timeLayout),
		})
	}
	return Table{
		Name:   "payment",
		Header: []string{"payment_id", "order_id", "method", "status", "amount", "transaction_reference", "paid_at"},
		Rows:   rows,
	}
}

func (ds *Dataset) shipmentTable() Table {
	rows := make([][]string, 0, len(ds.Shipments))
	for _, s := range ds.Shipments {
		deliveredAt := ""
		if s.DeliveredAt != nil {
			deliveredAt = s.DeliveredAt.Format(timeLayout)
		}
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			strconv.Itoa(s.OrderID),
			s.Carrier,
			s.TrackingNumber,
			s.Status.String(),
			s.ShippedAt.Format(timeLayout),
			deliveredAt,
			s.DestinationCountry,
		})
	}
	return Table{
		Name:   "shipment",
		Header: []string{"shipment_id", "order_id", "carrier", "tracking_number", "status", "shipped_at", "delivered_at", "destination_country"},
		Rows:   rows,
	}
}

func (ds *Dataset) reviewTable() Table {
	rows := make([][]string, 0, len(ds.Reviews))
	for _, r := range ds.Reviews {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.ProductID),
			strconv.Itoa(r.CustomerID),
			strconv.Itoa(r.Rating),
			r.TitleEN,
			r.TitleZH,
			r.TitleES,
			r.BodyEN,
			r.BodyZH,
			r.BodyES,
			r.CreatedAt.Format(timeLayout),
		})
	}
	return Table{
		Name:   "product_review",
		Header: []string{"review_id", "product_id", "customer_id", "rating", "title_en", "title_zh", "title_es", "body_en", "body_zh", "body_es", "created_at"},
		Rows:   rows,
	}
}

func (ds *Dataset) ticketTable() Table {
	rows := make([][]string, 0, len(ds.Tickets))
	for _, t := range ds.Tickets {
		resolvedAt := ""
		if t.ResolvedAt != nil {
			resolvedAt = t.ResolvedAt.Format(timeLayout)
		}
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			strconv.Itoa(t.CustomerID),
			t.SubjectEN,
			t.SubjectZH,
			t.SubjectES,
			t.Channel.String(),
			t.Priority.String(),
			t.Status.String(),
			t.CreatedAt.Format(timeLayout),
			resolvedAt,
		})
	}
	return Table{
		Name:   "support_ticket",
		Header: []string{"ticket_id", "customer_id", "subject_en", "subject_zh", "subject_es", "channel", "priority", "status", "created_at", "resolved_at"},
		Rows:   rows,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
