package main

import (
	"github.com/fractalfin/quant/pkg/cmd"
)

func main() {
	cmd.Execute()
}
