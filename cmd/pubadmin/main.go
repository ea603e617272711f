package main

import (
	"log"

	"github.com/eringen/pubadmin"
	"github.com/eringen/pubadmin/views"
)

func main() {
	cfg, err := pubadmin.ParseEnv()
	if err != nil {
		log.Fatal(err)
	}

	app := pubadmin.New(cfg, views.New(views.Site{Name: cfg.SiteName}).Funcs())
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
