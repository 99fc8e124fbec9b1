package main

import "github.com/oshokin/fflaunch/cmd/fflaunch/cmd"

func main() {
	cmd.Execute()
}
