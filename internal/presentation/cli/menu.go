// Package cli drives the interactive ordering session over a reader and
// writer pair. All user-facing text goes through the writer; structured
// logs stay on the logger.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pizzeria-sim/internal/application/ordering"
	"pizzeria-sim/internal/domain/menu"
	"pizzeria-sim/internal/domain/order"
	"pizzeria-sim/internal/observability"
	"pizzeria-sim/internal/observability/logctx"
)

// PaymentMethods supplies the strategies the payment menu offers.
type PaymentMethods struct {
	Cash     order.PaymentMethod
	Card     order.PaymentMethod
	External order.PaymentMethod
}

type Menu struct {
	svc      *ordering.Service
	payments PaymentMethods
	in       *bufio.Scanner
	out      io.Writer
	log      observability.Logger
}

func NewMenu(svc *ordering.Service, payments PaymentMethods, in io.Reader, out io.Writer, log observability.Logger) *Menu {
	if log == nil {
		log = observability.NopLogger()
	}
	return &Menu{
		svc:      svc,
		payments: payments,
		in:       bufio.NewScanner(in),
		out:      out,
		log:      log.With(observability.F("component", "cli")),
	}
}

// Run drives one full session: the ordering loop, the itemized listing,
// payment selection, and a single checkout.
func (m *Menu) Run(ctx context.Context) error {
	// Session-scoped logger for everything downstream of the CLI.
	ctx = logctx.With(ctx, m.log)

	m.orderLoop()
	m.printOrder()

	method, name := m.selectPayment()
	result, err := m.svc.Checkout(ctx, method, name)
	if err != nil {
		return fmt.Errorf("cli: checkout: %w", err)
	}

	m.log.Info("session_done",
		observability.F("receipt_id", result.ReceiptID),
		observability.F("total", result.Total.String()),
		observability.F("method", name),
	)
	fmt.Fprintf(m.out, "Receipt %s settled for Bs%s. Thanks for your order!\n", result.ReceiptID, result.Total)
	return nil
}

func (m *Menu) orderLoop() {
	for {
		fmt.Fprint(m.out, "\n=== Pizza Menu ===\n")
		fmt.Fprintf(m.out, "1. Pepperoni Pizza (Bs %s)\n", menu.Pepperoni().Price())
		fmt.Fprintf(m.out, "2. Hawaiian Pizza (Bs %s)\n", menu.Hawaiian().Price())
		fmt.Fprint(m.out, "3. Custom Pizza\n")
		fmt.Fprint(m.out, "4. Finish order\n")

		choice, ok := m.readChoice("Select an option: ")
		if !ok {
			// EOF counts as finishing the order.
			return
		}
		switch choice {
		case 1:
			m.svc.AddPepperoni()
			fmt.Fprint(m.out, "Pepperoni Pizza added.\n")
		case 2:
			m.svc.AddHawaiian()
			fmt.Fprint(m.out, "Hawaiian Pizza added.\n")
		case 3:
			if p, ok := m.buildCustom(); ok {
				m.svc.AddCustom(p)
				fmt.Fprint(m.out, "Custom Pizza added.\n")
			}
		case 4:
			fmt.Fprint(m.out, "Finishing order...\n")
			return
		default:
			m.log.Debug("invalid_selection", observability.F("menu", "order"), observability.F("choice", choice))
			fmt.Fprint(m.out, "Invalid option.\n")
		}
	}
}

// buildCustom runs the ingredient sub-menu. The second return is false
// when input ends before the pizza is confirmed with 0; the unfinished
// pizza is discarded rather than added at whatever price it reached.
func (m *Menu) buildCustom() (menu.Pizza, bool) {
	b := menu.NewBuilder()
	fmt.Fprint(m.out, "Pick ingredients for your custom pizza:\n")
	fmt.Fprintf(m.out, "1. Cheese (+Bs%s)\n", menu.CheeseCost)
	fmt.Fprintf(m.out, "2. Pepperoni (+Bs%s)\n", menu.PepperoniCost)
	fmt.Fprintf(m.out, "3. Pineapple (+Bs%s)\n", menu.PineappleCost)
	fmt.Fprint(m.out, "0. Done\n")

	for {
		choice, ok := m.readChoice("Ingredient: ")
		if !ok {
			return menu.Pizza{}, false
		}
		switch choice {
		case 1:
			b.AddCheese()
		case 2:
			b.AddPepperoni()
		case 3:
			b.AddPineapple()
		case 0:
			return b.Build(), true
		default:
			fmt.Fprint(m.out, "Invalid option.\n")
		}
	}
}

func (m *Menu) printOrder() {
	items := m.svc.Items()
	fmt.Fprint(m.out, "\nPizzas in the order:\n")
	for _, p := range items {
		fmt.Fprintf(m.out, "- %s (Bs%s)\n", p.Name(), p.Price())
	}
	fmt.Fprintf(m.out, "%d item(s), total Bs%s\n", len(items), m.svc.Total())
}

func (m *Menu) selectPayment() (order.PaymentMethod, string) {
	fmt.Fprint(m.out, "\nSelect payment method:\n")
	fmt.Fprint(m.out, "1. Cash\n2. Card\n3. External API\n")

	choice, ok := m.readChoice("Method: ")
	if !ok {
		return m.payments.Cash, "cash"
	}
	switch choice {
	case 1:
		return m.payments.Cash, "cash"
	case 2:
		return m.payments.Card, "card"
	case 3:
		return m.payments.External, "external_api"
	default:
		m.log.Warn("unknown_payment_method", observability.F("choice", choice))
		fmt.Fprint(m.out, "Invalid method. Defaulting to cash.\n")
		return m.payments.Cash, "cash"
	}
}

// readChoice prompts for and parses one line as an integer. Malformed
// input yields -1 so callers fall through to their invalid-option
// branch; the second return is false only at EOF.
func (m *Menu) readChoice(prompt string) (int, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(m.in.Text()))
	if err != nil {
		return -1, true
	}
	return n, true
}
