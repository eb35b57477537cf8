package main

import (
	"log"

	"github.com/vendingworks/coffeemaker/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
