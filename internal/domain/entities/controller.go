package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind holds the Cobra metadata a controller binds to.
type ControllerBind struct {
	Use    string
	Short  string
	Long   string
	Parent string // name of the parent group command, empty for root-level
}

// Controller is implemented by every subcommand controller.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
