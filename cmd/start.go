package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type startCmd struct{}

func (*startCmd) Name() string     { return "start" }
func (*startCmd) Synopsis() string { return "mark the first run as done" }
func (*startCmd) Usage() string {
	return `mpro start

  Marks the first-run step as done. Running it again is harmless.
`
}

func (*startCmd) SetFlags(f *flag.FlagSet) {}

func (*startCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession()
	if s.Started() {
		fmt.Println("Déjà démarré.")
		return subcommands.ExitSuccess
	}
	if err := s.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving the start flag: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("C'est parti ! Connectez-vous avec « mpro login », puis créez votre premier client.")
	return subcommands.ExitSuccess
}
