package main

import (
	"os"

	"github.com/tlvscope/tlvscope/cmd"
)

func main() {
	if err := cmd.CmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}
