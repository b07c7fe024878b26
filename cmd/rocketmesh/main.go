// rocketmesh builds 3D meshes of a rocket from its geometric description.
package main

import (
	"os"

	"github.com/Faultbox/rocketmesh/cmd/rocketmesh/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
