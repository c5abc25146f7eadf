package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/storekeeper/internal/config"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/services"
	"github.com/google/uuid"
)

// App is one interactive session.
type App struct {
	config    *config.Config
	customers *services.CustomerService
	catalog   *services.CatalogService
	orders    *services.OrderService
	log       logging.Logger

	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

// Services bundles what the menu commands call into.
type Services struct {
	Customers *services.CustomerService
	Catalog   *services.CatalogService
	Orders    *services.OrderService
}

// NewApp builds a session reading commands from in and writing to out.
// "Press Enter" pauses are only shown when in is a terminal.
func NewApp(c *config.Config, s Services, log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		config:      c,
		customers:   s.Customers,
		catalog:     s.Catalog,
		orders:      s.Orders,
		log:         log.With("session", uuid.NewString()),
		reader:      bufio.NewReader(in),
		out:         out,
		interactive: isInteractive(in),
	}
}

// Run shows the menu until the user exits or the input ends.
func (a *App) Run(ctx context.Context) {
	a.log.Info(ctx, "session started")
	fmt.Fprintln(a.out, "Welcome to storekeeper (type 'help' for commands)")
	runREPL(ctx, a, a.reader, a.out)
	a.log.Info(ctx, "session ended")
}

// pause waits for Enter so output is not scrolled away.
func (a *App) pause() {
	if !a.interactive {
		return
	}
	fmt.Fprint(a.out, "Press Enter to continue...")
	_, _ = a.reader.ReadString('\n')
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// call runs one store operation under the configured timeout.
func call[T any](ctx context.Context, a *App, fn func(ctx context.Context) (T, error)) (T, error) {
	if a.config.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.QueryTimeout)
		defer cancel()
	}
	return fn(ctx)
}

// do is call for operations without a result.
func do(ctx context.Context, a *App, fn func(ctx context.Context) error) error {
	_, err := call(ctx, a, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
