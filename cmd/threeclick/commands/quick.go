package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"threeclick/internal/domain"
)

// quickCmd exposes the marketing-page demo flows; none of them require an
// account.
func quickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Instant demo site from business name, service type and location",
	}
	cmd.AddCommand(quickGenerateCmd(), quickPDFCmd(), quickPublishCmd())
	return cmd
}

func quickFlags(cmd *cobra.Command, req *domain.QuickSiteRequest) {
	cmd.Flags().StringVar(&req.BusinessName, "name", "", "business name")
	cmd.Flags().StringVar(&req.ServiceType, "service", "", "service type, e.g. Plumber")
	cmd.Flags().StringVar(&req.Location, "location", "", "suburb or city")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("service")
	cmd.MarkFlagRequired("location")
}

func quickGenerateCmd() *cobra.Command {
	var req domain.QuickSiteRequest

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a site preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.API.QuickCreate(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.HTML)
			return nil
		},
	}
	quickFlags(cmd, &req)
	return cmd
}

func quickPDFCmd() *cobra.Command {
	var req domain.QuickSiteRequest
	var out string

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Download the site preview as a PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := wire.API.QuickPDF(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s (%d bytes)\n", out, len(data))
			return nil
		},
	}
	quickFlags(cmd, &req)
	cmd.Flags().StringVar(&out, "out", "website.pdf", "output file")
	return cmd
}

func quickPublishCmd() *cobra.Command {
	var req domain.QuickSiteRequest

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the demo site",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.API.QuickPublish(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Live at %s\n", resp.URL)
			return nil
		},
	}
	quickFlags(cmd, &req)
	return cmd
}
