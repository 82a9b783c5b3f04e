package main

import (
	"fmt"
	"log"
	"os"

	"github.com/trezcool/classboard/core"
	"github.com/trezcool/classboard/core/user"
	emailsvc "github.com/trezcool/classboard/services/email"
	logsvc "github.com/trezcool/classboard/services/logger"
	"github.com/trezcool/classboard/storage/database"
	sqlxrepos "github.com/trezcool/classboard/storage/database/sqlx"
)

func main() {
	os.Exit(run())
}

func run() int {
	conf := core.NewConfig()

	stdLogger := log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)

	core.ParseEmailTemplates(logger)

	// set up DB
	db, err := database.Open(conf)
	if err != nil {
		logger.Error(fmt.Sprintf("opening database: %v", err), err)
		return 1
	}
	defer func() { _ = db.Close() }()

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	// start CLI
	cli := commandLine{
		db:      db.DB,
		conf:    conf,
		usrSvc:  user.NewService(sqlxrepos.NewUserRepository(db), conf),
		mailSvc: mailSvc,
		out:     os.Stdout,
		outFd:   int(os.Stdout.Fd()),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			stdLogger.Printf("\nerror: %s\n", err)
		}
		return 1
	}
	return 0
}
