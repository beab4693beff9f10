package main

import (
	"context"
	"log"

	"github.com/sqlward/sqlward/internal/cli"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := cli.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
