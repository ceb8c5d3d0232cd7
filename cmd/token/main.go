// Command token signs an access token with the configured secret for local testing.
//
//	go run ./cmd/token -user 7f9c... -email ana@example.com -role student
package main

import (
	"flag"
	"fmt"
	"salas/config"
	"salas/infras/jwt"
	"salas/shared/constant"
	"salas/shared/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	userID := flag.String("user", uuid.NewString(), "user id carried by the token")
	email := flag.String("email", "dev@example.com", "email carried by the token")
	role := flag.String("role", constant.RoleStudent, "role: student, teacher, staff or admin")
	flag.Parse()

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	token, err := jwt.New(cfg).GenerateAccessToken(*userID, *email, *role)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sign token")
	}

	fmt.Println(token) //nolint:forbidigo
}
