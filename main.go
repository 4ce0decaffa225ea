package main

import (
	"loco-savior/cli"
)

func main() {
	cli.Start()
}
