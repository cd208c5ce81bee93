package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/mkeita/micropro"
)

type upgradeCmd struct{}

func (*upgradeCmd) Name() string     { return "upgrade" }
func (*upgradeCmd) Synopsis() string { return "print the WhatsApp link to request the premium plan" }
func (*upgradeCmd) Usage() string {
	return `mpro upgrade

  Prints a wa.me link to the support number with the premium upgrade
  request pre-filled. Set MICROPRO_SUPPORT to override the number.
`
}

func (*upgradeCmd) SetFlags(f *flag.FlagSet) {}

func (*upgradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Println(micropro.WhatsAppLink(supportNumber(), micropro.UpgradeMessage()))
	return subcommands.ExitSuccess
}
