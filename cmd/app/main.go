package main

import (
	"log/slog"
	"os"

	"github.com/malii-code/NumberConverterSystem/internal/app"
	"github.com/malii-code/NumberConverterSystem/internal/infra"
	"github.com/malii-code/NumberConverterSystem/internal/menu"
)

func main() {
	// 1. System Bootstrapping
	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(); err != nil {
		slog.Error("❌ Bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}

	infra.PrintBanner(bootstrap.Config)

	// 2. Interactive menu loop; blocks until exit is chosen or stdin ends.
	loop := menu.New(os.Stdin, os.Stdout, os.Stderr)
	if err := loop.Run(); err != nil {
		slog.Error("menu loop aborted", slog.Any("error", err))
		os.Exit(1)
	}
}
