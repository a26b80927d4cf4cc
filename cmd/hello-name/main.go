package main

import (
	"os"

	"github.com/joeydtaylor/steeze-pages/internal/hello"
	"github.com/joeydtaylor/steeze-pages/pkg/app"
	"github.com/joeydtaylor/steeze-pages/pkg/serverfx"
)

func main() {
	cmd := app.NewCommand(hello.HelloName,
		serverfx.WithService("hello-name"),
		serverfx.WithConfigDirEnv("HELLO_NAME_CONFIG"),
	)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
