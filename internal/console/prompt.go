package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const promptDateFormat = "2006-01-02"

// readLine returns the next input line; false means input was
// exhausted and the session should end.
func (c *Console) readLine(label string) (string, bool) {
	fmt.Fprintf(c.out, "%s: ", label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// promptString re-prompts until a non-empty line is entered.
func (c *Console) promptString(label string) (string, bool) {
	for {
		line, ok := c.readLine(label)
		if !ok {
			return "", false
		}
		if line != "" {
			return line, true
		}
		fmt.Fprintln(c.out, "Please enter a value.")
	}
}

// promptInt re-prompts until a whole number is entered.
func (c *Console) promptInt(label string) (int, bool) {
	for {
		line, ok := c.readLine(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, true
		}
		fmt.Fprintln(c.out, "Please enter a whole number.")
	}
}

// promptID re-prompts until a positive id is entered.
func (c *Console) promptID(label string) (uint, bool) {
	for {
		n, ok := c.promptInt(label)
		if !ok {
			return 0, false
		}
		if n > 0 {
			return uint(n), true
		}
		fmt.Fprintln(c.out, "Ids are positive numbers.")
	}
}

// promptFloat re-prompts until a number is entered.
func (c *Console) promptFloat(label string) (float64, bool) {
	for {
		line, ok := c.readLine(label)
		if !ok {
			return 0, false
		}
		f, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return f, true
		}
		fmt.Fprintln(c.out, "Please enter a number.")
	}
}

// promptDate re-prompts until a YYYY-MM-DD date is entered.
func (c *Console) promptDate(label string) (time.Time, bool) {
	for {
		line, ok := c.readLine(label + " (YYYY-MM-DD)")
		if !ok {
			return time.Time{}, false
		}
		t, err := time.Parse(promptDateFormat, line)
		if err == nil {
			return t, true
		}
		fmt.Fprintln(c.out, "Please enter a date as YYYY-MM-DD.")
	}
}
