package main

import (
	"flag"
	"log"

	"yashubustudio/sentencematcher/internal/app"
)

func main() {
	var opts app.Options
	flag.StringVar(&opts.EnvFile, "env", "", "Path to the .env file (default: ./.env)")
	flag.BoolVar(&opts.Verbose, "verbose", false, "Enable debug logging")
	flag.Parse()

	if err := app.Run(opts); err != nil {
		log.Fatalf("sentence-matcher: %v", err)
	}
}
