package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/streamlens/streamlens/cmd"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime)
	cmd.Execute()
}
