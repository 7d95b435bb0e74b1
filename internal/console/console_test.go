package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leasedesk/internal/store"
)

func runSession(t *testing.T, input ...string) string {
	t.Helper()

	db, err := store.Open()
	require.NoError(t, err)

	var out bytes.Buffer
	c := New(db, strings.NewReader(strings.Join(input, "\n")+"\n"), &out)
	require.NoError(t, c.Run())
	return out.String()
}

func TestSessionFullLifecycle(t *testing.T) {
	out := runSession(t,
		"1", "Maple Court", "12 Maple Street", // add property
		"2", "1", "101", "1200", // add unit
		"3", "Alice Johnson", "alice.johnson@example.com", "555-0101", // add tenant
		"4", "1", "1", "2026-01-01", "2026-12-31", "30", // create lease
		"5", "1", // activate lease
		"19",                    // list vacant units: none left
		"7", "1", "2026-02-01", // generate invoice
		"10", "1", "1200", "card", "4242", // record card payment in full
		"11", // list unpaid invoices
		"0",
	)

	assert.Contains(t, out, "Created property #1")
	assert.Contains(t, out, "Created unit #1")
	assert.Contains(t, out, "Created tenant #1")
	assert.Contains(t, out, "Created lease #1")
	assert.Contains(t, out, "No vacant units.")
	assert.Contains(t, out, "Invoice #1")
	assert.Contains(t, out, "Card ****4242")
	assert.Contains(t, out, "(PAID)")
	assert.Contains(t, out, "No unpaid invoices.")
	assert.Contains(t, out, "Bye.")
}

func TestSessionConflictIsReportedNotFatal(t *testing.T) {
	out := runSession(t,
		"1", "Maple Court", "12 Maple Street",
		"2", "1", "101", "1200",
		"3", "Alice Johnson", "alice.johnson@example.com", "555-0101",
		"3", "Brian Okafor", "b.okafor@example.com", "555-0102",
		"4", "1", "1", "2026-01-01", "2026-12-31", "30",
		"4", "1", "2", "2026-01-01", "2026-12-31", "30",
		"5", "1",
		"5", "2", // same unit: must conflict
		"9", // the loop keeps going: list active leases
		"0",
	)

	assert.Contains(t, out, "Error: unit already occupied")
	assert.Contains(t, out, "Alice Johnson")
}

func TestSessionRepromptsOnBadInput(t *testing.T) {
	out := runSession(t,
		"not-a-number", "1", // menu choice re-prompts
		"Maple Court", "12 Maple Street",
		"0",
	)

	assert.Contains(t, out, "Please enter a whole number.")
	assert.Contains(t, out, "Created property #1")
}

func TestSessionUnknownChoice(t *testing.T) {
	out := runSession(t, "42", "0")
	assert.Contains(t, out, "Unknown choice.")
}

func TestSessionEndsOnEOF(t *testing.T) {
	db, err := store.Open()
	require.NoError(t, err)

	var out bytes.Buffer
	c := New(db, strings.NewReader(""), &out)
	require.NoError(t, c.Run())
}
