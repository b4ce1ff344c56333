package main

import (
	"log"

	"github.com/MrSnakeDoc/recents/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("❌ recents: %v", err)
	}
}
