// Package appfs embeds the files shipped with the binaries: database migrations and email templates.
package appfs

import "embed"

//go:embed migrations/*.sql templates/email/*
var FS embed.FS
