// Package render formats entities as operator-facing text. Only the
// underlying field values are contractual; the layout is free to
// change.
package render

import (
	"fmt"
	"strings"

	"leasedesk/internal/models"
)

const dateFormat = "2006-01-02"

// PropertyLine is the one-line view of a property.
func PropertyLine(p *models.Property) string {
	return fmt.Sprintf("#%-4d %-24s %-32s %d units", p.ID, p.Name, p.Address, len(p.Units))
}

// PropertyDetail is the multi-line view of a property and its units.
func PropertyDetail(p *models.Property) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Property #%d: %s\n", p.ID, p.Name)
	fmt.Fprintf(&b, "  Address: %s\n", p.Address)
	if len(p.Units) == 0 {
		b.WriteString("  No units registered\n")
		return b.String()
	}
	fmt.Fprintf(&b, "  %-6s %-10s %12s  %s\n", "Unit", "Number", "Rent", "Status")
	for i := range p.Units {
		u := &p.Units[i]
		fmt.Fprintf(&b, "  %-6d %-10s %12.2f  %s\n", u.ID, u.UnitNumber, u.Rent, occupancyLabel(u))
	}
	return b.String()
}

func occupancyLabel(u *models.Unit) string {
	if u.Occupied {
		return "occupied"
	}
	return "vacant"
}

// UnitLine is the one-line view of a unit; the property name is shown
// when loaded.
func UnitLine(u *models.Unit) string {
	where := fmt.Sprintf("property %d", u.PropertyID)
	if u.Property != nil {
		where = u.Property.Name
	}
	return fmt.Sprintf("#%-4d %-10s %-24s rent %10.2f  %s", u.ID, u.UnitNumber, where, u.Rent, occupancyLabel(u))
}

// TenantLine is the one-line view of a tenant.
func TenantLine(t *models.Tenant) string {
	return fmt.Sprintf("#%-4d %-24s %-28s %s", t.ID, t.Name, t.Email, t.Phone)
}

// LeaseLine is the one-line view of a lease; unit and tenant names
// are shown when loaded.
func LeaseLine(l *models.Lease) string {
	unit := fmt.Sprintf("unit %d", l.UnitID)
	if l.Unit != nil {
		unit = fmt.Sprintf("unit %s", l.Unit.UnitNumber)
	}
	tenant := fmt.Sprintf("tenant %d", l.TenantID)
	if l.Tenant != nil {
		tenant = l.Tenant.Name
	}
	state := "inactive"
	if l.Active {
		state = "active"
	}
	return fmt.Sprintf("#%-4d %-10s %-24s %s .. %s  rent %10.2f  %s",
		l.ID, unit, tenant,
		l.StartDate.Format(dateFormat), l.EndDate.Format(dateFormat),
		l.Rent, state)
}

// InvoiceLine is the one-line view of an invoice, including derived
// totals. Payments must be loaded for the paid column to be
// meaningful.
func InvoiceLine(inv *models.RentInvoice) string {
	status := "UNPAID"
	if inv.Paid() {
		status = "paid"
	}
	return fmt.Sprintf("#%-4d lease %-4d due %s  base %10.2f  penalty %8.2f  total %10.2f  paid %10.2f  %s",
		inv.ID, inv.LeaseID, inv.DueDate.Format(dateFormat),
		inv.BaseAmount, inv.Penalty, inv.TotalAmount(), inv.PaidAmount(), status)
}

// InvoiceDetail is the multi-line view of an invoice and its
// payments.
func InvoiceDetail(inv *models.RentInvoice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Invoice #%d (lease %d)\n", inv.ID, inv.LeaseID)
	fmt.Fprintf(&b, "  Due:     %s\n", inv.DueDate.Format(dateFormat))
	fmt.Fprintf(&b, "  Base:    %12.2f\n", inv.BaseAmount)
	fmt.Fprintf(&b, "  Penalty: %12.2f\n", inv.Penalty)
	fmt.Fprintf(&b, "  Total:   %12.2f\n", inv.TotalAmount())
	if len(inv.Payments) == 0 {
		b.WriteString("  No payments recorded\n")
	} else {
		b.WriteString("  Payments:\n")
		for i := range inv.Payments {
			p := &inv.Payments[i]
			fmt.Fprintf(&b, "    %s  %12.2f  %s\n", p.Date.Format(dateFormat), p.Amount, p.MethodLabel())
		}
	}
	status := "UNPAID"
	if inv.Paid() {
		status = "PAID"
	}
	fmt.Fprintf(&b, "  Paid %.2f of %.2f (%s)\n", inv.PaidAmount(), inv.TotalAmount(), status)
	return b.String()
}

// MaintenanceLine is the one-line view of a maintenance request.
func MaintenanceLine(r *models.MaintenanceRequest) string {
	unit := fmt.Sprintf("unit %d", r.UnitID)
	if r.Unit != nil {
		unit = fmt.Sprintf("unit %s", r.Unit.UnitNumber)
	}
	return fmt.Sprintf("#%-4d %-10s %s  %-12s %s",
		r.ID, unit, r.ReportedAt.Format(dateFormat), r.Status, r.Description)
}

// MaintenanceDetail is the multi-line view of a maintenance request.
func MaintenanceDetail(r *models.MaintenanceRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Maintenance request #%d\n", r.ID)
	if r.Unit != nil {
		fmt.Fprintf(&b, "  Unit:     %s (#%d)\n", r.Unit.UnitNumber, r.UnitID)
	} else {
		fmt.Fprintf(&b, "  Unit:     #%d\n", r.UnitID)
	}
	if r.Tenant != nil {
		fmt.Fprintf(&b, "  Reporter: %s (#%d)\n", r.Tenant.Name, r.TenantID)
	} else {
		fmt.Fprintf(&b, "  Reporter: #%d\n", r.TenantID)
	}
	fmt.Fprintf(&b, "  Reported: %s\n", r.ReportedAt.Format(dateFormat))
	fmt.Fprintf(&b, "  Status:   %s\n", r.Status)
	fmt.Fprintf(&b, "  Issue:    %s\n", r.Description)
	if r.Notes != "" {
		fmt.Fprintf(&b, "  Notes:\n")
		for _, line := range strings.Split(r.Notes, "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}
	return b.String()
}
