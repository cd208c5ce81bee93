package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mkeita/micropro/renderer"
)

type profileCmd struct {
	name    string
	nif     string
	rccm    string
	address string
	phone   string
	email   string
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show or update the business profile" }
func (*profileCmd) Usage() string {
	return `mpro profile [-name <name>] [-nif <nif>] [-rccm <rccm>] [-address <address>] [-phone <phone>] [-email <email>]

  Without flags, shows the business profile printed on invoices. With
  flags, updates the given fields and keeps the others.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Business name")
	f.StringVar(&c.nif, "nif", "", "Tax identification number")
	f.StringVar(&c.rccm, "rccm", "", "Trade register number")
	f.StringVar(&c.address, "address", "", "Business address")
	f.StringVar(&c.phone, "phone", "", "Business phone")
	f.StringVar(&c.email, "email", "", "Business email")
}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession()
	p := s.Store().Profile()

	edited := false
	f.Visit(func(fl *flag.Flag) {
		edited = true
		switch fl.Name {
		case "name":
			p.BusinessName = c.name
		case "nif":
			p.NIF = c.nif
		case "rccm":
			p.RCCM = c.rccm
		case "address":
			p.Address = c.address
		case "phone":
			p.Phone = c.phone
		case "email":
			p.Email = c.email
		}
	})

	if !edited {
		printMarkdown(renderer.ProfileMarkdown(p))
		return subcommands.ExitSuccess
	}

	if !requireLogin(s) {
		return subcommands.ExitFailure
	}
	if err := s.Store().SetProfile(p); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Println("Profil mis à jour.")
	return subcommands.ExitSuccess
}
