// bankcli is the interactive console shell over the banking service: it
// reads menu choices, calls the service and prints whatever comes back.
// Errors are displayed and the loop continues.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/example/bank-ledger/internal/bank"
	"github.com/example/bank-ledger/internal/ledger"
)

const menu = `==== Banking Menu ====
1. Open Account
2. Deposit
3. Withdraw
4. Transfer
5. Statement
6. List Accounts
7. Search Accounts
8. Exit
Enter choice: `

func main() {
	// the console is the user surface; keep slog out of the way
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	svc := bank.NewService(ledger.NewRepository(), nil, logger)
	run(svc, os.Stdin, os.Stdout)
}

func run(svc *bank.Service, in io.Reader, out io.Writer) {
	ctx := context.Background()
	sc := bufio.NewScanner(in)
	prompt := func(label string) string {
		fmt.Fprint(out, label)
		if !sc.Scan() {
			return ""
		}
		return strings.TrimSpace(sc.Text())
	}
	promptAmount := func() (decimal.Decimal, error) {
		raw := prompt("Amount: ")
		amt, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, bank.Errorf(bank.InvalidAmount, "amount %q is not a number", raw)
		}
		return amt, nil
	}

	for {
		fmt.Fprint(out, color.Cyan.Sprint(menu))
		if !sc.Scan() {
			return
		}

		var err error
		switch strings.TrimSpace(sc.Text()) {
		case "1":
			name := prompt("Name: ")
			email := prompt("Email: ")
			typ := prompt("Type: ")
			var acc *ledger.Account
			if acc, err = svc.OpenAccount(ctx, name, email, typ); err == nil {
				fmt.Fprintln(out, color.Green.Sprintf("Account Created: %s", acc.ID))
			}
		case "2":
			id := prompt("Account No: ")
			var amt decimal.Decimal
			if amt, err = promptAmount(); err == nil {
				err = svc.Deposit(ctx, id, amt)
			}
		case "3":
			id := prompt("Account No: ")
			var amt decimal.Decimal
			if amt, err = promptAmount(); err == nil {
				err = svc.Withdraw(ctx, id, amt)
			}
		case "4":
			from := prompt("From: ")
			to := prompt("To: ")
			var amt decimal.Decimal
			if amt, err = promptAmount(); err == nil {
				err = svc.Transfer(ctx, from, to, amt)
			}
		case "5":
			id := prompt("Account No: ")
			var entries []ledger.Entry
			if entries, err = svc.GetStatement(ctx, id); err == nil {
				for _, e := range entries {
					fmt.Fprintln(out, e)
				}
			}
		case "6":
			printAccounts(out, svc.ListAccounts(ctx))
		case "7":
			printAccounts(out, svc.SearchByOwner(ctx, prompt("Name: ")))
		case "8":
			fmt.Fprintln(out, "Goodbye!")
			return
		default:
			fmt.Fprintln(out, "Invalid option.")
		}

		if err != nil {
			fmt.Fprintln(out, color.Red.Sprintf("Error: %v", err))
		}
	}
}

func printAccounts(out io.Writer, accounts []*ledger.Account) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Account", "Owner", "Type", "Balance"})
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, a := range accounts {
		table.Append([]string{a.ID, a.Owner.Name, string(a.Type), a.Balance().StringFixed(2)})
	}
	table.Render()
}
