package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mkeita/micropro"
)

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the invoices as CSV on stdout" }
func (*exportCmd) Usage() string {
	return `mpro export

  Writes every invoice as CSV on the standard output, with the header
  ID,Date,Client,Service,Montant. Amounts are bare digits.

Usage Examples:
$ mpro export > factures.csv
`
}

func (*exportCmd) SetFlags(f *flag.FlagSet) {}

func (*exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openSession().Store()
	if err := micropro.ExportInvoicesCSV(os.Stdout, store.Invoices(), store.Orders(), store.Clients()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing the export: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
