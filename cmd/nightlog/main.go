// Command nightlog serves the observation log API and runs single log
// operations from the command line.
//
// Usage:
//
//	nightlog serve
//	nightlog invoke get --payload '{"log_id":"..."}'
//	echo '{"user_id":"u1"}' | nightlog invoke list
//	nightlog version
//
// Configuration is read from the environment (DATABASE_URL, DATABASE_NAME,
// DATABASE_COLLECTION are required), an optional .env file and an optional
// YAML file at CONFIG_PATH.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(defaultDeps()).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFailedInvocation) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
