package main

import (
	"os"

	"github.com/SscSPs/coin_converter/cmd/coin_converter/commands"
)

// @title Coin converter API
// @version 1.0
// @description Breaks an amount of cents into US bills and coins.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
