package main

import "github.com/research-workspaces/env-lifecycle/cmd/env-lifecycle/cmd"

func main() {
	cmd.Execute()
}
