package main

import (
	"context"
	"fmt"
	"time"

	echoapi "github.com/trezcool/classboard/apps/api/echo"
)

func (cli *commandLine) token(userID string, ttl time.Duration) error {
	usr, err := cli.usrSvc.GetByID(context.Background(), userID)
	if err != nil {
		return err
	}

	claims := echoapi.GetUserClaims(usr, cli.conf)
	claims.ExpiresAt = cli.tokenExpiry(claims.IssuedAt, ttl)

	tkn, err := echoapi.GenerateToken(claims, cli.conf.SecretKey)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, tkn)
	return nil
}

func (cli *commandLine) tokenExpiry(issuedAt int64, ttl time.Duration) int64 {
	if ttl == 0 {
		ttl = cli.conf.Server.JWTExpirationDelta
	}
	return time.Unix(issuedAt, 0).Add(ttl).Unix()
}
