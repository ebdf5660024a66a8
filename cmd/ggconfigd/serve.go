package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joshuapare/ggconfig/internal/obslog"
	"github.com/joshuapare/ggconfig/internal/persist/walfile"
	"github.com/joshuapare/ggconfig/pkg/engine"
)

func runServe() error {
	mode := walfile.FlushAuto
	if flushArg == "batched" {
		mode = walfile.FlushBatched
	}

	debug := debugLog || os.Getenv("GG_CONFIG_DEBUG") != ""
	log := obslog.New(debug)

	log.Info("starting", "data_dir", dataDir, "flush_mode", flushArg)

	store, err := walfile.Open(dataDir, mode)
	if err != nil {
		log.Error("failed to open store", "err", err)
		return err
	}

	e := engine.New(store)
	defer func() {
		if err := e.Close(); err != nil {
			log.Error("close failed", "err", err)
		}
	}()

	log.Info("ready")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("received signal, shutting down", "signal", sig.String())
	return nil
}
