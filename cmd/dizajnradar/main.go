package main

import (
	"github.com/mslovenc/DizajnRadar/internal/cli"
)

func main() {
	cli.Execute()
}
