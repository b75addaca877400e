// app_tail supervises a demo web application and relays its server
// and browser console logs to an MCP tool-calling client.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajsharma/app_tail/internal/config"
	"github.com/ajsharma/app_tail/internal/mcp"
	"github.com/ajsharma/app_tail/internal/supervisor"
	"github.com/ajsharma/app_tail/internal/webapp"
)

var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "app_tail",
	Short: "Supervise a demo web app and relay its logs over MCP",
	Long: `app_tail runs an MCP server on stdio that lets a tool-calling client
start and stop a demo web application, drive a headless Chrome browser
against it, and read both server-side and browser-side logs.

Example:
  # Serve the MCP tool surface on stdio (the normal mode)
  app_tail

  # Run the demo web application directly
  app_tail app --port 5001`,
	RunE: run,
}

var appPort string

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Run the demo web application",
	Long: `Run the demo web application in the foreground. This is the command
the supervisor spawns as its child process; running it directly is
useful for working on the page itself.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return webapp.ListenAndServe(appPort)
	},
}

func init() {
	// Supervised application flags
	rootCmd.Flags().StringVar(&cfg.AppPort, "app-port", cfg.AppPort,
		"Port the demo web application binds to")
	rootCmd.Flags().StringSliceVar(&cfg.AppCommand, "app-command", cfg.AppCommand,
		"Command to launch the web application (default: this binary's app subcommand)")

	// Browser flags
	rootCmd.Flags().StringVarP(&cfg.ChromePort, "chrome-port", "p", cfg.ChromePort,
		"Chrome remote debugging port")
	rootCmd.Flags().DurationVar(&cfg.BrowserTimeout, "browser-timeout", cfg.BrowserTimeout,
		"Timeout for browser launch, navigation, and clicks")

	// Pacing flags
	rootCmd.Flags().DurationVar(&cfg.StartupGrace, "startup-grace", cfg.StartupGrace,
		"Fixed delay after spawning the app before browser setup")

	rootCmd.Version = config.Version

	appCmd.Flags().StringVar(&appPort, "port", config.DefaultConfig().AppPort,
		"Port to bind the demo web application to")

	rootCmd.AddCommand(appCmd)
}

func run(cmd *cobra.Command, args []string) error {
	// Diagnostics go to stderr; stdout belongs to the JSON-RPC stream.
	log.SetOutput(os.Stderr)
	log.Printf("app_tail %s serving MCP on stdio", config.Version)

	sup := supervisor.New(cfg)
	server := mcp.NewServer(sup)

	err := server.Run(os.Stdin, os.Stdout)

	// The client hung up; release the child process and browser.
	_ = sup.Stop()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
