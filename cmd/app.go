// Package cmd implements the CLI application to run the business.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/mkeita/micropro"
)

// Environment variables read by the application. A .env file in the working
// directory is loaded first.
const (
	EnvHome    = "MICROPRO_HOME"
	EnvSupport = "MICROPRO_SUPPORT"
)

func init() {
	// Missing .env is the normal case.
	godotenv.Load()
}

// Commands is the full command surface, registered by the main package.
var Commands = []subcommands.Command{
	&startCmd{},
	&loginCmd{},
	&logoutCmd{},
	&dashboardCmd{},
	&clientsCmd{},
	&addClientCmd{},
	&editClientCmd{},
	&rmClientCmd{},
	&ordersCmd{},
	&addOrderCmd{},
	&editOrderCmd{},
	&payCmd{},
	&invoicesCmd{},
	&billCmd{},
	&reportCmd{},
	&exportCmd{},
	&remindCmd{},
	&upgradeCmd{},
	&profileCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var homeFlag = flag.String("home", "", "Path to the data directory (defaults to $MICROPRO_HOME, then .micropro)")

// home resolves the data directory: flag, then environment, then default.
func home() string {
	if *homeFlag != "" {
		return *homeFlag
	}
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	return ".micropro"
}

// supportNumber is the WhatsApp number upgrade requests go to.
func supportNumber() string {
	if n := os.Getenv(EnvSupport); n != "" {
		return n
	}
	return micropro.DefaultSupportNumber
}

// openSession restores the session from the data directory. Restore failures
// are warnings: the affected keys fall back to their defaults and the
// session is always usable.
func openSession() *micropro.Session {
	s, warn := micropro.Open(micropro.NewDirStore(home()))
	if warn != nil {
		fmt.Fprintf(os.Stderr, "Warning: some data could not be restored: %v\n", warn)
	}
	return s
}

// requireLogin gates the mutating commands behind an identity.
func requireLogin(s *micropro.Session) bool {
	if _, ok := s.CurrentUser(); ok {
		return true
	}
	fmt.Fprintln(os.Stderr, "Error: not logged in. Run: mpro login -name <business> -email <email>")
	return false
}
