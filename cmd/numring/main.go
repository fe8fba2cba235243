package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	config, err := LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	if err := NewApp(config, log, os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
