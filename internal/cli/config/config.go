// Package config holds the sqlward CLI configuration.
package config

import (
	"fmt"
	"log"

	"github.com/alexflint/go-arg"
	"github.com/samber/lo"
	"github.com/sqlward/sqlward/internal/version"
)

// Config represents the configuration for the sqlward CLI.
type Config struct {
	Driver      string `arg:"--driver,env:SQLWARD_DRIVER" help:"Database driver to use (sqlite3, postgres)" default:"sqlite3"`
	DSN         string `arg:"positional,env:SQLWARD_DSN" help:"Connection string for the target database" default:":memory:"`
	TablePrefix string `arg:"--table-prefix,env:SQLWARD_TABLE_PREFIX" help:"Prefix combined with every table name"`
	Verbose     bool   `arg:"--verbose,env:SQLWARD_VERBOSE" help:"Log every executed statement as JSON" default:"false"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.CLIVersion())
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := arg.NewParser(
		arg.Config{},
		&cfg,
	)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	if err := validateDriver(cfg.Driver); err != nil {
		log.Fatal(err)
	}

	return cfg
}

// validateDriver validates that driver is one of the drivers linked into
// the CLI binary.
func validateDriver(driver string) error {
	valid := []string{"sqlite3", "postgres"}
	if !lo.Contains(valid, driver) {
		return fmt.Errorf("invalid driver %q, valid values are %v", driver, valid)
	}
	return nil
}
