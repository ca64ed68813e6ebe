package main

import "github.com/kasuboski/vfp/cmd"

func main() {
	cmd.Execute()
}
