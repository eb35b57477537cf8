package main

import (
	"github.com/vendingworks/coffeemaker/pkg/cli"
)

func main() {
	cli.Execute()
}
