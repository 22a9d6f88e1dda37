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
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eslsoft/prepnet/internal/infrastructure/backup"
	"github.com/eslsoft/prepnet/internal/infrastructure/config"
)

// backupPullCmd dumps the advisory record copies held by the backup
// repository to stdout as a JSON array.
var backupPullCmd = &cobra.Command{
	Use:   "backup-pull",
	Short: "Fetch mirrored records from the backup repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, _ := cmd.Flags().GetString("prefix")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		store := backup.NewGitHubStore(cfg)
		if !store.Enabled() {
			return fmt.Errorf("no backup token configured")
		}

		payloads, err := store.List(cmd.Context(), prefix)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", prefix, err)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payloads)
	},
}

func init() {
	rootCmd.AddCommand(backupPullCmd)
	backupPullCmd.Flags().String("prefix", "test_results", "object prefix to fetch (test_results or users)")
}
