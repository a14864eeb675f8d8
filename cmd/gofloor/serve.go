package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gofloor/internal/server"
)

// addrEnv overrides the configured listen address
const addrEnv = "GOFLOOR_ADDR"

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve annotation sessions over HTTP",
	Long: fmt.Sprintf(`Start the headless HTTP API. Every uploaded plan gets its own session;
sessions share nothing but the settings store. The listen address is taken
from --addr, then $%s, then the configuration.`, addrEnv),
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, done, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore(done, &err)

	addr := serveAddr
	if addr == "" {
		addr = os.Getenv(addrEnv)
	}
	if addr == "" {
		addr = cfg.Addr
	}

	srv := server.New(cfg, store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(addr)
	}()
	success("Listening on %s", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		fmt.Println("Shutting down...")
		if err := srv.Shutdown(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return <-errCh
	}
}
