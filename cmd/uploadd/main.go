package main

import (
	"log"

	"github.com/eringen/pubadmin/uploadsvc"
)

func main() {
	cfg, err := uploadsvc.ParseEnv()
	if err != nil {
		log.Fatal(err)
	}

	if err := uploadsvc.New(cfg).Start(); err != nil {
		log.Fatal(err)
	}
}
