// Command api serves the personal-site HTTP API.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/liammahoney/site-api/internal/app"
	"github.com/liammahoney/site-api/internal/config"
)

func main() {
	help := flag.Bool("help", false, "print supported environment variables and exit")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	switch {
	case *help:
		usage, err := config.Usage()
		if err != nil {
			log.Fatalf("usage: %v", err)
		}
		fmt.Println(usage)
		return
	case *version:
		fmt.Println(app.BuildVersion())
		return
	}

	if err := app.Run(context.Background()); err != nil {
		log.Printf("api: %v", err)
		os.Exit(1)
	}
}
