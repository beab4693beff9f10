// Package cli wires the sqlward interactive shell together.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sqlward/sqlward"
	"github.com/sqlward/sqlward/internal/cli/config"
	"github.com/sqlward/sqlward/internal/cli/repl"
	"github.com/sqlward/sqlward/internal/log"
	"github.com/sqlward/sqlward/internal/version"
)

// Run runs the sqlward CLI.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(version.CLIVersion())

	opts := []sqlward.Option{
		sqlward.WithPrefix(conf.TablePrefix),
	}
	if conf.Verbose {
		opts = append(opts, sqlward.WithLogger(log.NewLogger(os.Stderr)))
	}

	svc, err := sqlward.Open(conf.Driver, conf.DSN, opts...)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", conf.DSN, err)
	}
	defer svc.Close()

	rp := repl.NewRepl(ctx, stop, conf, svc)
	defer rp.Shutdown()
	go func() {
		if err := rp.Start(); err != nil {
			fmt.Println(err)
			stop()
		}
	}()

	<-ctx.Done()
	fmt.Printf("\nGoodbye!\n\n")
	return nil
}
