package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// AppendSignalHandling returns a context that is cancelled on the first
// SIGINT or SIGTERM. A second signal exits immediately.
func AppendSignalHandling(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)

	cancelChan := make(chan os.Signal, 2)

	signal.Notify(cancelChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-cancelChan
		cancel()
		<-cancelChan
		os.Exit(1)
	}()

	return ctx
}
