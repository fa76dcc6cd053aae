package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

var (
	matchJobPath    string
	matchResumePath string
	matchConfigPath string
	matchOutputPath string
	matchVerbose    bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long:  `Read a job description and a resume as plain text files, run the matching pipeline, and print the MatchResult as JSON.`,
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchJobPath, "job", "", "Path to job description text file (required)")
	matchCmd.Flags().StringVar(&matchResumePath, "resume", "", "Path to resume text file (required)")
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to JSON config file")
	matchCmd.Flags().StringVar(&matchOutputPath, "output", "", "Write the result JSON to this file instead of stdout")
	matchCmd.Flags().BoolVar(&matchVerbose, "verbose", false, "Print extraction and scoring details")
	_ = matchCmd.MarkFlagRequired("job")
	_ = matchCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if matchConfigPath != "" {
		loaded, err := config.Load(matchConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	jobText, err := os.ReadFile(matchJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}
	resumeText, err := os.ReadFile(matchResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	engine, err := pipeline.NewEngine(cfg)
	if err != nil {
		return err
	}

	if matchVerbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "run %s\n", uuid.NewString())
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintRequirements(engine.ExtractRequirements(string(jobText)))
		printer.PrintProfile(engine.ExtractProfile(string(resumeText)))
	}

	result, err := engine.Match(context.Background(), pipeline.Request{
		JobText:    string(jobText),
		ResumeText: string(resumeText),
	})
	if err != nil {
		return err
	}

	if matchVerbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintMatchResult(result)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	if err := schemas.ValidateMatchResult(data); err != nil {
		return fmt.Errorf("result failed schema validation: %w", err)
	}

	if matchOutputPath != "" {
		if err := os.WriteFile(matchOutputPath, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
