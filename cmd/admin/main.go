package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "coderelay",
		Short: "Admin CLI tool for the contest backend",
	}

	var seedFile string
	var catalogPath string

	var seedTeamsCmd = &cobra.Command{
		Use:   "seed-teams",
		Short: "Create teams from a TOML file and print their generated passwords",
		Run: func(cmd *cobra.Command, args []string) {
			loadEnv()
			if err := seedTeams(seedFile, catalogPath); err != nil {
				log.Fatal(err)
			}
		},
	}
	seedTeamsCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Teams TOML file (required)")
	seedTeamsCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "problems.toml", "Problem catalog TOML file")
	seedTeamsCmd.MarkFlagRequired("file")

	var rebuildScoresCmd = &cobra.Command{
		Use:   "rebuild-scores",
		Short: "Recompute every team's totals and statuses from section state",
		Run: func(cmd *cobra.Command, args []string) {
			loadEnv()
			if err := rebuildScores(); err != nil {
				log.Fatal(err)
			}
		},
	}

	var teamID string
	var resetTeamCmd = &cobra.Command{
		Use:   "reset-team",
		Short: "Reset a team's score record to the zero state",
		Run: func(cmd *cobra.Command, args []string) {
			loadEnv()
			if err := resetTeam(teamID); err != nil {
				log.Fatal(err)
			}
		},
	}
	resetTeamCmd.Flags().StringVarP(&teamID, "team", "t", "", "Team ID (required)")
	resetTeamCmd.MarkFlagRequired("team")

	var hashPasswordCmd = &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the bcrypt hash of a password, for ADMIN_PW_BCRYPT",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(string(hash))
		},
	}

	rootCmd.AddCommand(seedTeamsCmd)
	rootCmd.AddCommand(rebuildScoresCmd)
	rootCmd.AddCommand(resetTeamCmd)
	rootCmd.AddCommand(hashPasswordCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadEnv() {
	// .env is optional here, plain env vars work too
	_ = godotenv.Load()
}
