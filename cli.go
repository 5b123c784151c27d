//go:build cli
// +build cli

package main

import (
	_ "hotbray.GO/custom"

	"hotbray.GO/cmd"
	"hotbray.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
