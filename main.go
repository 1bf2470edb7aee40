package main

import (
	"os"

	"github.com/VoxDroid/cmgr/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
