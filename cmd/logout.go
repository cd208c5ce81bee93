package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mkeita/micropro"
)

type logoutCmd struct {
	yes bool
}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "clear the session identity" }
func (*logoutCmd) Usage() string {
	return `mpro logout -yes

  Clears the identity and the first-run flag. Clients, orders, invoices and
  the profile are kept. The -yes flag is required: this returns the
  application to its not-started state.
`
}

func (c *logoutCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm the logout")
}

func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession()
	err := s.Logout(c.yes)
	if errors.Is(err, micropro.ErrNotConfirmed) {
		fmt.Fprintln(os.Stderr, "Error: logout must be confirmed with -yes")
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Println("Déconnecté. Vos données sont conservées.")
	return subcommands.ExitSuccess
}
