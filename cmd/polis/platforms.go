package main

import "fmt"

// Run executes the platforms command.
func (c *PlatformsCmd) Run(deps *Dependencies) error {
	for _, p := range deps.Registry.List() {
		fmt.Fprintln(deps.Stdout, p)
	}
	return nil
}
