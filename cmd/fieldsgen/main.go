// Command fieldsgen generates typed field name constants from YAML
// declaration files or from Go structs with fields.Placeholder members.
//
// Usage:
//
//	fieldsgen gen -f fields.yaml
//	fieldsgen gen --pkg ./api --watch
//	fieldsgen check -f fields.yaml
//	fieldsgen dump -f fields.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"fieldsclass/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer func() {
		_ = zap.L().Sync()
	}()

	app := cli.New(ctx, os.Stdout, afero.NewOsFs())
	kingpin.MustParse(app.Parse(os.Args[1:]))
}
