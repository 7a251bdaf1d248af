package interfaces

import (
	"context"
	"fmt"

	"github.com/igor-tools/igor-install/internal/domain"
	"github.com/spf13/cobra"
)

type CLIHandler struct {
	service domain.InstallService
	logger  domain.Logger
}

// NewCLIHandler creates a new CLI handler
func NewCLIHandler(service domain.InstallService, logger domain.Logger) *CLIHandler {
	return &CLIHandler{
		service: service,
		logger:  logger,
	}
}

// CreateRootCommand creates the root cobra command
func (c *CLIHandler) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "igor-install",
		Short: "Installs Igor Pro procedure files",
		Long: `igor-install links procedure files from a git repository or a local
directory into the User Procedures and Igor Procedures folders of an
installed Igor Pro version.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(c.createInstallCommand())
	rootCmd.AddCommand(c.createVersionsCommand())

	return rootCmd
}

func (c *CLIHandler) createInstallCommand() *cobra.Command {
	var config domain.InstallConfig

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install procedure files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.GitURL == "" && config.LocalPath == "" {
				_ = cmd.Usage()
				return fmt.Errorf("please provide a valid path or git repository")
			}
			return c.handleInstall(cmd.Context(), &config)
		},
	}

	cmd.Flags().StringVarP(&config.GitURL, "git", "g", "", "Git repository to install from")
	cmd.Flags().StringVarP(&config.LocalPath, "path", "p", "", "Local directory to install from")
	cmd.Flags().StringVarP(&config.Version, "version", "v", "", "Specify the Igor Pro version (default: highest installed)")
	cmd.Flags().BoolVarP(&config.Interactive, "interactive", "i", false, "Choose the Igor Pro version interactively")

	return cmd
}

func (c *CLIHandler) createVersionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List available Igor Pro versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.handleVersions()
		},
	}
}

func (c *CLIHandler) handleInstall(ctx context.Context, config *domain.InstallConfig) error {
	result, err := c.service.Install(ctx, config)
	if err != nil {
		// Links created before the failure are left in place; list them so
		// the user can undo by hand.
		if result != nil && len(result.Linked) > 0 {
			c.logger.Warning("Install failed after creating %d link(s):", len(result.Linked))
			for _, entry := range result.Linked {
				fmt.Printf("  - %s\n", entry.Dest)
			}
		}
		return err
	}

	c.logger.Info("Created %d link(s) for Igor Pro %s", len(result.Linked), result.Version)
	return nil
}

func (c *CLIHandler) handleVersions() error {
	versions, err := c.service.ListVersions()
	if err != nil {
		return fmt.Errorf("failed to list versions: %w", err)
	}

	fmt.Println("Available Igor Pro Versions:")
	for _, version := range versions {
		fmt.Println(version)
	}

	return nil
}
