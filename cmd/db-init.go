/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/eslsoft/prepnet/internal/infrastructure/config"
	"github.com/eslsoft/prepnet/internal/infrastructure/database"
)

// dbInitCmd creates the schema and loads the default curriculum and accounts.
// Note: go-sqlite3 requires CGO_ENABLED=1 at build time.
var dbInitCmd = &cobra.Command{
	Use:   "db-init",
	Short: "Create the database schema and seed the default curriculum",
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaOnly, _ := cmd.Flags().GetBool("schema-only")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		db, closeDB, err := database.Open(cfg)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer closeDB()

		ctx := cmd.Context()
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
		log.Printf("schema applied at %s", cfg.Database.Path)

		if schemaOnly {
			return nil
		}
		if err := database.Seed(ctx, db); err != nil {
			return err
		}
		log.Println("seed data loaded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbInitCmd)
	dbInitCmd.Flags().Bool("schema-only", false, "apply the schema without loading seed data")
}
