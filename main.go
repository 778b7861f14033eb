package main

import (
	"fmt"
	"os"

	"github.com/avstrong/confirmation/internal/app"
	"github.com/avstrong/confirmation/internal/logger"
)

func main() {
	l, err := logger.New(logger.Conf{Env: os.Getenv("CONFIRMATION_ENV"), Level: "info"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	var exitCode int

	if err := app.Run(l); err != nil {
		l.LogErrorf("Failed to run app: %v", err.Error())

		exitCode = 1
	}

	_ = l.Sync()

	os.Exit(exitCode)
}
