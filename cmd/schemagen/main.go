package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/schemagen/config"
	"gorm.io/schemagen/descriptor"
	"gorm.io/schemagen/generator"
	"gorm.io/schemagen/migrator"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "schemagen",
		Short:         "Generate relational schemas from mapping descriptors",
		Long:          `schemagen derives tables, columns and primary, foreign and unique keys from entity mapping descriptors.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newGenerateCmd())
	return rootCmd
}

type generateOptions struct {
	descriptors string
	configFile  string
	platform    string
	format      string
	outputFile  string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the schema of a descriptor file",
		Long:  `Load entity descriptors from a YAML file and print the generated tables, referenced tables first.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.descriptors, "descriptors", "d", "", "Descriptor file (YAML)")
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Config file (default: environment only)")
	cmd.Flags().StringVarP(&opts.platform, "platform", "p", "", "Target platform, overrides the config: generic, postgres, mysql, sqlite or oracle")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text or yaml")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "Output file (default: stdout)")
	_ = cmd.MarkFlagRequired("descriptors")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}

	if opts.platform != "" {
		cfg.Platform = opts.platform
	}

	genOpts, err := cfg.Options(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	descriptors, err := descriptor.LoadFile(opts.descriptors)
	if err != nil {
		return fmt.Errorf("failed to load descriptors: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	g := generator.New(genOpts...)
	m := migrator.New(g.Generate(ctx, descriptors), g.Platform())

	writer := cmd.OutOrStdout()
	if opts.outputFile != "" {
		f, err := os.Create(opts.outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to close output file: %v\n", err)
			}
		}()
		writer = f
	}

	switch opts.format {
	case "text":
		err = newTextFormatter(writer).Format(m)
	case "yaml":
		err = newYAMLFormatter(writer).Format(m)
	default:
		return fmt.Errorf("invalid format: %s (must be 'text' or 'yaml')", opts.format)
	}

	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
