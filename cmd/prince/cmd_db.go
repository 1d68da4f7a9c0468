package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/config"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/database/migrations"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/database/seeders"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/database"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/migration"
)

var cliDB *gorm.DB

// bootDB loads config, opens the database, and registers migrations.
func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	db, err := database.Open()
	if err != nil {
		return err
	}
	cliDB = db
	migrations.RegisterAll()
	return nil
}

// prince db:migrate
var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Running migrations…")
		return migration.New(cliDB).Run()
	},
}

// prince db:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "db:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Rolling back last batch…")
		return migration.New(cliDB).Rollback()
	},
}

// prince db:status
var migrateStatusCmd = &cobra.Command{
	Use:   "db:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		return migration.New(cliDB).Status()
	},
}

// prince db:seed
var seedCmd = &cobra.Command{
	Use:   "db:seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Running seeders…")
		return seeders.Run(cliDB)
	},
}
