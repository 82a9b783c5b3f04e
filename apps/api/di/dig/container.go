package dig_container

import (
	"fmt"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/classboard/apps/api/echo"
	"github.com/trezcool/classboard/core"
	"github.com/trezcool/classboard/core/content"
	"github.com/trezcool/classboard/core/quiz"
	"github.com/trezcool/classboard/core/user"
	logsvc "github.com/trezcool/classboard/services/logger"
	"github.com/trezcool/classboard/storage/database"
	sqlxrepos "github.com/trezcool/classboard/storage/database/sqlx"
)

type DBLoggerParam struct {
	dig.In
	Logger core.Logger `name:"dbLogger"`
}

type serverParams struct {
	dig.In
	Conf       *core.Config
	Logger     core.Logger
	UserSvc    user.ServiceInterface
	ContentSvc content.ServiceInterface
	QuizSvc    quiz.ServiceInterface
	Validate   *validator.Validate
	Translator ut.Translator
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDBLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDB(conf *core.Config, loggerParam DBLoggerParam) (*sqlx.DB, sqlx.ExtContext) {
	setUp := func() (*sqlx.DB, error) {
		if err := database.CreateIfNotExist(conf); err != nil {
			return nil, err
		}

		db, err := database.Open(conf)
		if err != nil {
			return nil, err
		}

		if err = database.Migrate(db.DB, "up"); err != nil {
			return nil, err
		}
		return db, nil
	}

	db, err := setUp()
	if err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	return db, db
}

func newServer(p serverParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:       p.Conf,
		Logger:     p.Logger,
		UserSvc:    p.UserSvc,
		ContentSvc: p.ContentSvc,
		QuizSvc:    p.QuizSvc,
		Validate:   p.Validate,
		Translator: p.Translator,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newDB))
	must(c.Provide(sqlxrepos.NewUserRepository, dig.As(new(user.Repository))))
	must(c.Provide(sqlxrepos.NewContentRepository, dig.As(new(content.Repository))))
	must(c.Provide(sqlxrepos.NewQuizRepository, dig.As(new(quiz.Repository))))
	must(c.Provide(validator.New))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(user.NewService, dig.As(new(user.ServiceInterface))))
	must(c.Provide(content.NewService, dig.As(new(content.ServiceInterface))))
	must(c.Provide(quiz.NewService, dig.As(new(quiz.ServiceInterface))))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
