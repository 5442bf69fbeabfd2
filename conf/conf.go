package conf

import (
	"fmt"
	"os"
	"time"
)

func GetPgConnStrFromEnv() string {
	host := os.Getenv("POSTGRES_HOST")
	pw := os.Getenv("POSTGRES_PW")
	user := os.Getenv("POSTGRES_USER")
	port := os.Getenv("POSTGRES_PORT")
	db := os.Getenv("POSTGRES_DB")
	ssl := os.Getenv("POSTGRES_SSLMODE")

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pw, db, ssl)
}

// StorageMode selects the storage backend once at process start.
// Either "postgres" or "memory"; defaults to postgres.
func StorageMode() string {
	mode := os.Getenv("STORAGE")
	if mode == "" {
		return "postgres"
	}
	return mode
}

// ContestWindow reads the contest start and end times from env.
// Both are RFC 3339 timestamps.
func ContestWindow() (start, end time.Time, err error) {
	startStr := os.Getenv("COMPETITION_START_TIME")
	endStr := os.Getenv("COMPETITION_END_TIME")
	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse COMPETITION_START_TIME: %w", err)
	}
	end, err = time.Parse(time.RFC3339, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse COMPETITION_END_TIME: %w", err)
	}
	return start, end, nil
}
