package main

import (
	"aimlab/internal/app"
	"log"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err.Error())
	}
}
