package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/mail"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/trezcool/classboard/core"
)

const digestSubject = "Platform statistics"

func (cli *commandLine) stats(asJSON bool) error {
	summary, err := cli.usrSvc.Stats(context.Background())
	if err != nil {
		return err
	}

	if asJSON || !isTerminalFunc(cli.outFd) {
		enc := json.NewEncoder(cli.out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total users\t%d\n", summary.TotalUsers)
	fmt.Fprintf(w, "Students\t%d\n", summary.TotalStudents)
	fmt.Fprintf(w, "Admins\t%d\n", summary.TotalAdmins)
	fmt.Fprintf(w, "New this month\t%d\n", summary.NewUsersThisMonth)
	fmt.Fprintf(w, "New this week\t%d\n", summary.NewUsersThisWeek)
	for _, g := range summary.MonthlyGrowth {
		fmt.Fprintf(w, "%s\t%d\n", g.Label, g.Count)
	}
	return w.Flush()
}

// digest emails the statistics summary and blocks until the email service is done.
func (cli *commandLine) digest(recipients string) error {
	list, err := mail.ParseAddressList(recipients)
	if err != nil {
		return errors.Wrap(err, "parsing recipients")
	}
	to := make([]mail.Address, 0, len(list))
	for _, addr := range list {
		to = append(to, *addr)
	}

	summary, err := cli.usrSvc.Stats(context.Background())
	if err != nil {
		return err
	}

	cli.mailSvc.SendMessages(&core.EmailMessage{
		To:           to,
		Subject:      digestSubject,
		TemplateName: "stats_digest",
		TemplateData: summary,
	})
	cli.mailSvc.Wait()
	fmt.Fprintf(cli.out, "digest sent to %d recipient(s)\n", len(to))
	return nil
}
