package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/skillarena/backend/challenge"
	challengepg "github.com/skillarena/backend/challenge/pgrepo"
	"github.com/skillarena/backend/conf"
	"github.com/skillarena/backend/http"
	"github.com/skillarena/backend/participant"
	"github.com/skillarena/backend/participant/ddbdir"
	"github.com/skillarena/backend/scoreboard"
	scoreboardhttp "github.com/skillarena/backend/scoreboard/http"
	scoreboardpg "github.com/skillarena/backend/scoreboard/pgrepo"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, conf.GetPgConnStrFromEnv())
	if err != nil {
		slog.Error("failed to create postgres pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		slog.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)

	profileTableName := os.Getenv("DDB_PROFILE_TABLE_NAME")
	if profileTableName == "" {
		slog.Error("DDB_PROFILE_TABLE_NAME is not set")
		os.Exit(1)
	}

	policy, err := conf.LoadScorePolicy(os.Getenv("SCORE_POLICY_PATH"))
	if err != nil {
		slog.Error("failed to load score policy", "error", err)
		os.Exit(1)
	}

	participantSrvc := participant.NewParticipantSrvc(
		ddbdir.NewDynamoDbProfileTable(ddbClient, profileTableName))
	challengeSrvc := challenge.NewChallengeSrvc(challengepg.NewPgChallengeRepo(pool))
	scoreboardRepo := scoreboardpg.NewPgScoreboardRepo(pool)

	scoreboardSrvc := scoreboard.NewScoreboardSrvc(
		scoreboardRepo,
		scoreboardRepo,
		participantSrvc,
		challengeSrvc,
		policy,
	)

	scoreboardHandler := scoreboardhttp.NewScoreboardHttpHandler(scoreboardSrvc)
	httpServer := http.NewHttpServer(scoreboardHandler, []byte(jwtKey))

	address := ":8080"
	log.Printf("Starting server on %s", address)
	err = httpServer.Start(address)
	log.Printf("Server stopped with error: %v", err)
}
