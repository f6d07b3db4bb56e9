package main

import (
	"flag"
	"log"
	"os"

	"github.com/hailam/clickboard/internal/console"
	"github.com/hailam/clickboard/internal/play"
	"github.com/hailam/clickboard/internal/storage"
)

var (
	dataDir = flag.String("data", "", "data directory (default: platform data directory)")
	resume  = flag.Bool("resume", false, "continue the last stored board")
	noStore = flag.Bool("nostore", false, "do not read or write any stored state")
	noColor = flag.Bool("nocolor", false, "disable colored output")
)

func main() {
	flag.Parse()

	var store *storage.Storage
	if !*noStore {
		var err error
		store, err = storage.NewStorage(*dataDir)
		if err != nil {
			log.Printf("Warning: Failed to initialize storage: %v", err)
		} else {
			defer store.Close()
		}
	}

	session := play.Open(store, *resume)

	c := console.New(session, os.Stdin, os.Stdout, !*noColor)
	if err := c.Run(); err != nil {
		log.Printf("Input error: %v", err)
	}
}
