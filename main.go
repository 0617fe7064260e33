package main

import (
	cmd "github.com/inference-gateway/tilecfg/cmd"
)

func main() {
	cmd.Execute()
}
