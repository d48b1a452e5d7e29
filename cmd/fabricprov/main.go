package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mhartwig/fabricprov/pkg/apply"
	"github.com/mhartwig/fabricprov/pkg/client"
	"github.com/mhartwig/fabricprov/pkg/document"
	"github.com/mhartwig/fabricprov/pkg/utils"
	"github.com/mhartwig/fabricprov/pkg/validate"
)

var (
	dataDir      string
	validateOnly bool
	logFile      string
	assumeYes    bool
	dryRun       bool
	configFile   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fabricprov",
		Short: "Fabric Provisioner",
		Long:  `Validates a declarative fabric configuration and provisions it on a fabric-management endpoint`,
		RunE:  runProvision,
	}

	rootCmd.Flags().StringVar(&dataDir, "dir", ".", "Directory containing fabric.yaml")
	rootCmd.Flags().BoolVar(&validateOnly, "validate-only", false, "Validate the document and stop; never contact the endpoint")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write output to this file instead of the console")
	rootCmd.Flags().BoolVar(&assumeYes, "yes", false, "Proceed without asking when optional sections are undefined")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Simulate changes without applying them")
	rootCmd.Flags().StringVar(&configFile, "config", ".env", "Credentials file path")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runProvision(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := buildLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Credentials file is optional; environment variables win either way
	if err := godotenv.Load(configFile); err != nil && !os.IsNotExist(err) {
		logger.Warning("Could not load %s: %v", configFile, err)
	}

	logger.Info("Loading document from %s", dataDir)
	doc, err := document.Load(dataDir)
	if err != nil {
		logger.Error("Failed to load document", err)
		return err
	}

	registry, report := validate.Run(doc)

	for _, rec := range report.Records {
		logger.Error(rec.String(), nil)
	}
	for _, section := range report.Undefined {
		logger.Warning("Section %s is undefined", section)
	}

	if report.Failed() {
		logger.Error(fmt.Sprintf("Validation failed with %d errors", len(report.Records)), nil)
		return fmt.Errorf("validation failed")
	}

	logger.Success("Validation passed")

	if validateOnly {
		logger.Info("Validate-only run, stopping before apply")
		return nil
	}

	fabricURL := os.Getenv("FABRIC_URL")
	fabricUser := os.Getenv("FABRIC_USER")
	fabricPassword := os.Getenv("FABRIC_PASSWORD")
	if fabricURL == "" || fabricUser == "" || fabricPassword == "" {
		logger.Error("FABRIC_URL, FABRIC_USER and FABRIC_PASSWORD must be set", nil)
		return fmt.Errorf("missing required environment variables")
	}

	logger.Info("Connecting to %s", fabricURL)
	c, err := client.NewClient(fabricURL, fabricUser, fabricPassword, dryRun, logger)
	if err != nil {
		logger.Error("Failed to connect to fabric endpoint", err)
		return err
	}

	orchestrator := apply.NewOrchestrator(c)
	if err := orchestrator.Load(registry); err != nil {
		return err
	}
	if err := orchestrator.MarkValidated(); err != nil {
		return err
	}

	if len(report.Undefined) > 0 && !assumeYes {
		if !confirm(fmt.Sprintf("%d sections are undefined and will be skipped. Continue?", len(report.Undefined))) {
			orchestrator.Abort()
			logger.Warning("Aborted by operator")
			return fmt.Errorf("aborted")
		}
	}
	if err := orchestrator.Confirm(); err != nil {
		return err
	}

	if err := orchestrator.Apply(); err != nil {
		return err
	}

	orchestrator.Summary()

	if orchestrator.Failed() {
		return fmt.Errorf("one or more groups failed")
	}

	if dryRun {
		logger.Warning("DRY RUN COMPLETE: No changes applied")
	} else {
		logger.Success("PROVISIONING COMPLETE")
	}

	return nil
}

// buildLogger routes output to the console or, with --log-file, to a
// plain-text log file
func buildLogger() (*utils.Logger, func(), error) {
	if logFile == "" {
		return utils.NewLogger(dryRun), func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	color.NoColor = true
	return utils.NewFileLogger(f, dryRun), func() { f.Close() }, nil
}

// confirm asks the operator a yes/no question on stdin
func confirm(question string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
