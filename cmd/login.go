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

type loginCmd struct {
	name  string
	email string
	phone string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "record the business identity for this data directory" }
func (*loginCmd) Usage() string {
	return `mpro login -name <business> -email <email> [-phone <phone>]

  Records the identity of the business. There is no password: the submitted
  form is accepted as-is. The profile's business name is kept in sync.

Usage Examples:
$ mpro login -name "Atelier Aïcha" -email aicha@example.ne
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Business name (required)")
	f.StringVar(&c.email, "email", "", "Contact email (required)")
	f.StringVar(&c.phone, "phone", "", "Contact phone")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession()
	u, err := s.Login(micropro.UserDraft{BusinessName: c.name, Email: c.email, Phone: c.phone})
	var verr *micropro.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		// The login took effect in memory; the save is what failed.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Printf("Bienvenue, %s !\n", u.BusinessName)
	return subcommands.ExitSuccess
}
