package main

import (
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/vocdoni/community-registry/api"
	"github.com/vocdoni/community-registry/registry"
	"go.vocdoni.io/dvote/db"
	"go.vocdoni.io/dvote/db/metadb"
	"go.vocdoni.io/dvote/log"
)

func main() {
	host := flag.String("host", "0.0.0.0", "API host to bind")
	port := flag.Int("port", 8080, "API port to bind")
	dataDir := flag.String("datadir", filepath.Join(os.TempDir(), "communityd"), "data directory for the registry database")
	logLevel := flag.String("loglevel", "info", "log level (debug, info, warn, error)")
	flag.Parse()
	log.Init(*logLevel, "stdout", nil)

	database, err := metadb.New(db.TypePebble, *dataDir)
	if err != nil {
		log.Fatalf("could not open database: %v", err)
	}
	stg, err := registry.New(database)
	if err != nil {
		log.Fatalf("could not open registry storage: %v", err)
	}
	defer stg.Close()
	log.Infow("registry storage ready", "datadir", *dataDir, "size", stg.Tree().Size())

	if _, err := api.New(&api.APIConfig{
		Host:    *host,
		Port:    *port,
		Storage: stg,
	}); err != nil {
		log.Fatalf("could not start API: %v", err)
	}

	// Wait for shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")
}
