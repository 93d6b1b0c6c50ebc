package main

import (
	"context"
	"fmt"
	"os"

	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zfake/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zfake"))

	ctx, cancel := zapp.SignalContext(context.Background())
	code := cli.Execute(ctx, version)
	cancel()

	if err := app.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "zfake: shutdown: %v\n", err)
		code = 1
	}
	os.Exit(code)
}
