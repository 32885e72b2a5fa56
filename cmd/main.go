package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mydocmaker/api/internal/config"
	"github.com/spf13/cobra"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title MyDocMaker API
// @version 1.0.0
// @description Document, image, video and voiceover generation behind Firebase auth with daily usage quotas
// @host localhost:8080
// @BasePath /functions/v1
// @schemes http https
// @securityDefinitions.apikey FirebaseToken
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// newRootCmd builds the command tree. The -c flag is shared by every subcommand.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "mydocmaker",
		Short:         "MyDocMaker backend API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")

	loadConfig := func() (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		return cfg, nil
	}

	root.AddCommand(
		newServeCmd(loadConfig),
		newMigrateCmd(loadConfig),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			printBuildInfo(cmd.OutOrStdout())
		},
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "Version: %s\nCommit: %s\nBuild date: %s\n", buildVersion, buildCommit, buildDate)
}
