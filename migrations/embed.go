// Package migrations содержит SQL миграции схемы базы данных,
// встроенные в бинарь сервиса.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
