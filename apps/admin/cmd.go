package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/trezcool/classboard/core"
	"github.com/trezcool/classboard/core/user"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db      *sql.DB
	conf    *core.Config
	usrSvc  user.ServiceInterface
	mailSvc core.EmailService
	out     io.Writer
	outFd   int
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS] - run a goose command (up, down, status, redo, ...)")
	fmt.Fprintln(cli.out, "  stats [-json] - print the platform statistics")
	fmt.Fprintln(cli.out, "  digest -to EMAIL[,EMAIL] - email the platform statistics")
	fmt.Fprintln(cli.out, "  token -user ID [-ttl DURATION] - print a signed API token for a profile")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	statsCmd := flag.NewFlagSet("stats", flag.ExitOnError)
	statsJSON := statsCmd.Bool("json", false, "Print JSON even when stdout is a terminal.")

	digestCmd := flag.NewFlagSet("digest", flag.ExitOnError)
	digestTo := digestCmd.String("to", "", "Comma-separated list of recipients.")

	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	tokenUser := tokenCmd.String("user", "", "The profile ID.")
	tokenTTL := tokenCmd.Duration("ttl", 0, "Token lifetime (defaults to the server's JWT expiration delta).")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "stats":
		if err := statsCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.stats(*statsJSON)
	case "digest":
		if err := digestCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *digestTo == "" {
			digestCmd.Usage()
			return errHelp
		}
		return cli.digest(*digestTo)
	case "token":
		if err := tokenCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *tokenUser == "" || *tokenTTL < 0 {
			tokenCmd.Usage()
			return errHelp
		}
		return cli.token(*tokenUser, *tokenTTL)
	default:
		cli.printUsage()
		return errHelp
	}
}
