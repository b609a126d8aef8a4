package main

import (
	"github.com/robotalks/sat.go/pkg/cli/sh"

	_ "github.com/robotalks/sat.go/pkg/cli/cmds/all"
)

func main() {
	sh.Main()
}
