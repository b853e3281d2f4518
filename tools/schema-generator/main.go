// Command schema-generator writes the JSON schema of navbar configuration
// files so editors can validate navbar.yml without running navbar.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/grovetools/navbar/config"
	"github.com/grovetools/navbar/logging"
)

func main() {
	out := flag.String("o", "schema/navbar.schema.json", "output path")
	flag.Parse()

	log := logging.NewLogger("schema-generator")

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.WithError(err).Fatal("Error generating schema")
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.WithError(err).Fatal("Error creating schema directory")
	}
	if err := os.WriteFile(*out, append(schemaBytes, '\n'), 0644); err != nil {
		log.WithError(err).Fatal("Error writing schema file")
	}

	log.WithField("path", *out).Info("Generated configuration schema")
}
