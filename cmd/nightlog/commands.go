package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TGiulio/nightlog/internal/app"
	"github.com/TGiulio/nightlog/internal/config"
	"github.com/TGiulio/nightlog/internal/transport/function"
	"github.com/TGiulio/nightlog/pkg/ctxutil"
)

var operations = []string{"create", "delete", "get", "list", "update"}

// errFailedInvocation marks an envelope with statusCode >= 400. The envelope
// has already been printed, so main only sets the exit code.
var errFailedInvocation = errors.New("invocation failed")

type invoker interface {
	Invoke(ctx context.Context, operation string, payload []byte) (function.Response, error)
}

type deps struct {
	serve         func(ctx context.Context) error
	openFunctions func(ctx context.Context) (invoker, func(), error)
}

func defaultDeps() deps {
	return deps{
		serve: app.Run,
		openFunctions: func(ctx context.Context) (invoker, func(), error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, nil, err
			}
			logger := app.NewLogger(cfg.Log)

			a, err := app.New(ctx, cfg, logger)
			if err != nil {
				return nil, nil, err
			}
			return a.Functions(), func() { _ = a.Close(context.Background()) }, nil
		},
	}
}

func newRootCmd(d deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "nightlog",
		Short:         "Observation log service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(d), newInvokeCmd(d), newVersionCmd())
	return root
}

func newServeCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return d.serve(cmd.Context())
		},
	}
}

func newInvokeCmd(d deps) *cobra.Command {
	var payload, userID string

	cmd := &cobra.Command{
		Use:       "invoke <" + strings.Join(operations, "|") + ">",
		Short:     "Run one log operation and print its {statusCode, body} envelope",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: operations,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := []byte(payload)
			if !cmd.Flags().Changed("payload") {
				var err error
				if raw, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("read payload: %w", err)
				}
			}

			ctx := cmd.Context()
			if userID != "" {
				ctx = ctxutil.WithUserID(ctx, userID)
			}

			fns, closeFn, err := d.openFunctions(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			resp, err := fns.Invoke(ctx, args[0], raw)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if err := enc.Encode(resp); err != nil {
				return fmt.Errorf("write response: %w", err)
			}

			if resp.StatusCode >= 400 {
				return errFailedInvocation
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&payload, "payload", "", "JSON payload (read from stdin when omitted)")
	cmd.Flags().StringVar(&userID, "user", "", "requesting user ID")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
