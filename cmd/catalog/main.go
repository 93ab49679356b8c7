package main

import (
	"log"

	"github.com/MrSnakeDoc/catalog/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("catalog failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("catalog stopped with error: %v", err)
	}
}
