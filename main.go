/*
This is an example application that drives the engine package with the
headless renderer backend.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/ossia/engine"
	"github.com/spaghettifunk/ossia/engine/renderer"
	"github.com/spaghettifunk/ossia/testbed"
)

func main() {
	tb := testbed.NewTestGame()

	e, err := engine.New(tb, renderer.NewHeadless(), nil)
	if err != nil {
		panic(err)
	}

	if err := e.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		<-sigCh
		e.Stop()
	}()

	if err := e.Run(); err != nil {
		panic(err)
	}

	if err := e.Shutdown(); err != nil {
		panic(err)
	}
}
