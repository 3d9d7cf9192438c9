package main

import (
	"os"
	_ "time/tzdata"

	"github.com/msto63/sparrow/cmd/sparrow/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
