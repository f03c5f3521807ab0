package main

import (
	"context"

	"github.com/KiaFarhang/guarded-counter/internal/cli"
)

func main() {
	ctx := cli.AppendSignalHandling(context.Background())
	cli.ExecuteContext(ctx)
}
