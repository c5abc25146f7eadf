package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/storekeeper/internal/logging"
)

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests provide a stub.
type execIface interface {
	Register(ctx context.Context) error
	ViewSpaceships(ctx context.Context) error
	OrderSpaceship(ctx context.Context) error
	ViewCustomer(ctx context.Context) error
	UpdateCustomer(ctx context.Context) error
	CustomerOrders(ctx context.Context) error
	Report(ctx context.Context, err error)
}

const menu = `
=== Spaceship Store Menu ===
1. Register New Customer
2. View Spaceships
3. Order Spaceship
4. View Customer Info
5. Update Customer Info
6. View Customer Orders
7. Exit`

// runREPL reads one command per line and dispatches it. It returns on
// "exit"/"quit"/"7", on end of input, or when ctx is done.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	fmt.Fprintln(w, menu)
	for {
		if ctx.Err() != nil {
			return
		}

		line, err := GetSimpleText(reader, "storekeeper> select an option", w)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		name := strings.ToLower(parts[0])
		cctx := logging.ContextWith(ctx, "command", name)

		var cmdErr error
		switch name {
		case "help", "?", "menu":
			fmt.Fprintln(w, menu)
			continue
		case "1", "register":
			cmdErr = a.Register(cctx)
		case "2", "ships":
			cmdErr = a.ViewSpaceships(cctx)
		case "3", "order":
			cmdErr = a.OrderSpaceship(cctx)
		case "4", "customer":
			cmdErr = a.ViewCustomer(cctx)
		case "5", "update":
			cmdErr = a.UpdateCustomer(cctx)
		case "6", "orders":
			cmdErr = a.CustomerOrders(cctx)
		case "7", "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", parts[0])
			continue
		}

		if errors.Is(cmdErr, io.EOF) {
			return
		}
		if cmdErr != nil {
			a.Report(cctx, cmdErr)
		}
	}
}

// Report logs err and prints its user message.
func (a *App) Report(ctx context.Context, err error) {
	if isFatalToOperation(err) {
		a.log.Error(ctx, "command failed", "error", err)
	} else {
		a.log.Debug(ctx, "command rejected", "error", err)
	}
	a.println(userMessage(err))
	a.pause()
}
