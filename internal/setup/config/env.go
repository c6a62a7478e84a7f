package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads variables from the given file when it exists. Missing
// files are fine; deployed environments inject their own variables.
func LoadEnvFile(path string) {
	if err := godotenv.Load(path); err != nil {
		log.Printf("no env file loaded from %s: %v", path, err)
	}
}
