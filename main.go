package main

import "github.com/Layr-Labs/eigenops/cmd"

func main() {
	cmd.Execute()
}
