// file: main.go
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/nartbuilds/yaolin-bets/database"
	"github.com/nartbuilds/yaolin-bets/routes"
)

func main() {
	// .env 不存在时直接用环境变量/缺省值
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	database.Connect()
	database.InitRedis()

	if os.Getenv("YAOLIN_AUTO_MIGRATE") == "true" {
		database.MigrateTables()
	}

	r := routes.SetupRouter()

	addr := os.Getenv("YAOLIN_LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on " + addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
