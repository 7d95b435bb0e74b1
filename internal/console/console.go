// Package console runs the interactive operator loop: it reads and
// validates primitive input, dispatches to the services and prints
// their results. No business rule lives here.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"gorm.io/gorm"

	"leasedesk/internal/billing"
	"leasedesk/internal/leasing"
	"leasedesk/internal/models"
	"leasedesk/internal/registry"
	"leasedesk/internal/render"
)

// Console drives one operator session over the given reader and
// writer.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	registry *registry.Service
	leasing  *leasing.Service
	billing  *billing.Service
}

func New(db *gorm.DB, in io.Reader, out io.Writer) *Console {
	return &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		registry: registry.NewService(db),
		leasing:  leasing.NewService(db),
		billing:  billing.NewService(db),
	}
}

const menu = `
leasedesk
  1) add property            10) record payment
  2) add unit                11) list unpaid invoices
  3) add tenant              12) show invoice
  4) create lease            13) log maintenance request
  5) activate lease          14) update maintenance status
  6) terminate lease         15) add maintenance note
  7) generate invoice        16) list maintenance requests
  8) assess late fees        17) list properties
  9) list active leases      18) list tenants
                             19) list vacant units
  0) quit
`

// Run loops until the operator quits or input is exhausted. Service
// errors are printed and the loop continues; no core error ends the
// session.
func (c *Console) Run() error {
	for {
		fmt.Fprint(c.out, menu)
		choice, ok := c.promptInt("Choice")
		if !ok {
			return nil
		}

		if choice == 0 {
			fmt.Fprintln(c.out, "Bye.")
			return nil
		}
		if handler, found := c.handlers()[choice]; found {
			if err := handler(); err != nil {
				fmt.Fprintf(c.out, "Error: %v\n", err)
			}
		} else {
			fmt.Fprintln(c.out, "Unknown choice.")
		}
	}
}

func (c *Console) handlers() map[int]func() error {
	return map[int]func() error{
		1:  c.addProperty,
		2:  c.addUnit,
		3:  c.addTenant,
		4:  c.createLease,
		5:  c.activateLease,
		6:  c.terminateLease,
		7:  c.generateInvoice,
		8:  c.assessLateFees,
		9:  c.listActiveLeases,
		10: c.recordPayment,
		11: c.listUnpaidInvoices,
		12: c.showInvoice,
		13: c.logMaintenance,
		14: c.updateMaintenanceStatus,
		15: c.addMaintenanceNote,
		16: c.listMaintenance,
		17: c.listProperties,
		18: c.listTenants,
		19: c.listVacantUnits,
	}
}

func (c *Console) addProperty() error {
	name, ok := c.promptString("Name")
	if !ok {
		return nil
	}
	address, ok := c.promptString("Address")
	if !ok {
		return nil
	}
	property, err := c.registry.AddProperty(name, address)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Created property #%d\n", property.ID)
	return nil
}

func (c *Console) addUnit() error {
	propertyID, ok := c.promptID("Property id")
	if !ok {
		return nil
	}
	number, ok := c.promptString("Unit number")
	if !ok {
		return nil
	}
	rent, ok := c.promptFloat("Monthly rent")
	if !ok {
		return nil
	}
	unit, err := c.registry.AddUnit(propertyID, number, rent)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Created unit #%d\n", unit.ID)
	return nil
}

func (c *Console) addTenant() error {
	name, ok := c.promptString("Name")
	if !ok {
		return nil
	}
	email, ok := c.promptString("Email")
	if !ok {
		return nil
	}
	phone, ok := c.promptString("Phone")
	if !ok {
		return nil
	}
	tenant, err := c.registry.AddTenant(name, email, phone)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Created tenant #%d\n", tenant.ID)
	return nil
}

func (c *Console) createLease() error {
	unitID, ok := c.promptID("Unit id")
	if !ok {
		return nil
	}
	tenantID, ok := c.promptID("Tenant id")
	if !ok {
		return nil
	}
	start, ok := c.promptDate("Start date")
	if !ok {
		return nil
	}
	end, ok := c.promptDate("End date")
	if !ok {
		return nil
	}
	cycleDays, ok := c.promptInt("Billing cycle (days)")
	if !ok {
		return nil
	}
	lease, err := c.leasing.CreateLease(unitID, tenantID, start, end, cycleDays)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Created lease #%d (inactive, rent %.2f)\n", lease.ID, lease.Rent)
	return nil
}

func (c *Console) activateLease() error {
	leaseID, ok := c.promptID("Lease id")
	if !ok {
		return nil
	}
	lease, err := c.leasing.Activate(leaseID)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, render.LeaseLine(lease))
	return nil
}

func (c *Console) terminateLease() error {
	leaseID, ok := c.promptID("Lease id")
	if !ok {
		return nil
	}
	lease, err := c.leasing.Terminate(leaseID)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, render.LeaseLine(lease))
	return nil
}

func (c *Console) generateInvoice() error {
	leaseID, ok := c.promptID("Lease id")
	if !ok {
		return nil
	}
	dueDate, ok := c.promptDate("Due date")
	if !ok {
		return nil
	}
	invoice, err := c.billing.GenerateInvoice(leaseID, dueDate)
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, render.InvoiceDetail(invoice))
	return nil
}

func (c *Console) assessLateFees() error {
	assessed, err := c.billing.AssessLateFees(time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Assessed late fees on %d invoice(s)\n", assessed)
	return nil
}

func (c *Console) recordPayment() error {
	invoiceID, ok := c.promptID("Invoice id")
	if !ok {
		return nil
	}
	amount, ok := c.promptFloat("Amount")
	if !ok {
		return nil
	}
	method, ok := c.promptString("Method (cash/card)")
	if !ok {
		return nil
	}

	var payment *models.Payment
	var err error
	if strings.EqualFold(method, "card") {
		last4, ok := c.promptString("Card last 4 digits")
		if !ok {
			return nil
		}
		payment, err = models.NewCardPayment(time.Now(), amount, last4)
	} else {
		payment, err = models.NewCashPayment(time.Now(), amount)
	}
	if err != nil {
		return err
	}

	invoice, err := c.billing.RecordPayment(invoiceID, payment)
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, render.InvoiceDetail(invoice))
	return nil
}

func (c *Console) showInvoice() error {
	invoiceID, ok := c.promptID("Invoice id")
	if !ok {
		return nil
	}
	invoice, err := c.billing.Invoice(invoiceID)
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, render.InvoiceDetail(invoice))
	return nil
}

func (c *Console) logMaintenance() error {
	unitID, ok := c.promptID("Unit id")
	if !ok {
		return nil
	}
	tenantID, ok := c.promptID("Tenant id")
	if !ok {
		return nil
	}
	description, ok := c.promptString("Description")
	if !ok {
		return nil
	}
	request, err := c.leasing.LogMaintenance(unitID, tenantID, description)
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, render.MaintenanceDetail(request))
	return nil
}

func (c *Console) updateMaintenanceStatus() error {
	requestID, ok := c.promptID("Request id")
	if !ok {
		return nil
	}
	raw, ok := c.promptString("Status (logged/assigned/in_progress/resolved/closed)")
	if !ok {
		return nil
	}
	status, err := models.ParseMaintenanceStatus(raw)
	if err != nil {
		return err
	}
	request, err := c.leasing.SetMaintenanceStatus(requestID, status)
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, render.MaintenanceDetail(request))
	return nil
}

func (c *Console) addMaintenanceNote() error {
	requestID, ok := c.promptID("Request id")
	if !ok {
		return nil
	}
	note, ok := c.promptString("Note")
	if !ok {
		return nil
	}
	request, err := c.leasing.AppendMaintenanceNote(requestID, note)
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, render.MaintenanceDetail(request))
	return nil
}

func (c *Console) listActiveLeases() error {
	leases, err := c.leasing.ActiveLeases()
	if err != nil {
		return err
	}
	if len(leases) == 0 {
		fmt.Fprintln(c.out, "No active leases.")
		return nil
	}
	for i := range leases {
		fmt.Fprintln(c.out, render.LeaseLine(&leases[i]))
	}
	return nil
}

func (c *Console) listUnpaidInvoices() error {
	invoices, err := c.billing.UnpaidInvoices()
	if err != nil {
		return err
	}
	if len(invoices) == 0 {
		fmt.Fprintln(c.out, "No unpaid invoices.")
		return nil
	}
	for i := range invoices {
		fmt.Fprintln(c.out, render.InvoiceLine(&invoices[i]))
	}
	return nil
}

func (c *Console) listMaintenance() error {
	requests, err := c.leasing.MaintenanceRequests()
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		fmt.Fprintln(c.out, "No maintenance requests.")
		return nil
	}
	for i := range requests {
		fmt.Fprintln(c.out, render.MaintenanceLine(&requests[i]))
	}
	return nil
}

func (c *Console) listProperties() error {
	properties, err := c.registry.Properties()
	if err != nil {
		return err
	}
	if len(properties) == 0 {
		fmt.Fprintln(c.out, "No properties registered.")
		return nil
	}
	for i := range properties {
		fmt.Fprint(c.out, render.PropertyDetail(&properties[i]))
	}
	return nil
}

func (c *Console) listTenants() error {
	tenants, err := c.registry.Tenants()
	if err != nil {
		return err
	}
	if len(tenants) == 0 {
		fmt.Fprintln(c.out, "No tenants registered.")
		return nil
	}
	for i := range tenants {
		fmt.Fprintln(c.out, render.TenantLine(&tenants[i]))
	}
	return nil
}

func (c *Console) listVacantUnits() error {
	units, err := c.registry.VacantUnits()
	if err != nil {
		return err
	}
	if len(units) == 0 {
		fmt.Fprintln(c.out, "No vacant units.")
		return nil
	}
	for i := range units {
		fmt.Fprintln(c.out, render.UnitLine(&units[i]))
	}
	return nil
}
