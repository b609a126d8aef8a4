// Package all registers every device shell command.
package all

import (
	// device commands
	_ "github.com/robotalks/sat.go/pkg/cli/cmds/adacs"
	_ "github.com/robotalks/sat.go/pkg/cli/cmds/common"
	_ "github.com/robotalks/sat.go/pkg/cli/cmds/gps"
)
