package main

import "github.com/pfrederiksen/lcmhl-games/internal/cli"

func main() {
	cli.Execute()
}
