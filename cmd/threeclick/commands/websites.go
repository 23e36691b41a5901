package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func websitesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "websites",
		Short: "Manage your websites",
	}
	cmd.AddCommand(
		websitesListCmd(), websitesShowCmd(), websitesDeleteCmd(),
		websitesPublishCmd(), websitesDomainCmd(), websitesVersionsCmd(),
		websitesRestoreCmd(), websitesStatsCmd(),
	)
	return cmd
}

func websitesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your websites",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := wire.Session.RequireUser(); err != nil {
				return err
			}
			sites, err := wire.API.Websites(cmd.Context())
			if err != nil {
				return err
			}
			if len(sites) == 0 {
				fmt.Println("No websites yet. Run `threeclick builder` to create one.")
				return nil
			}
			for _, s := range sites {
				status := "draft"
				if s.IsPublished {
					status = s.PublishedURL
				}
				fmt.Printf("%d\t%s\t%s\t%s\n", s.ID, s.BusinessName, s.Template, status)
			}
			return nil
		},
	}
}

func websitesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one website",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := wire.API.Website(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s (id %d)\nTemplate: %s\nPublished: %v", s.BusinessName, s.ID, s.Template, s.IsPublished)
			if s.IsPublished {
				fmt.Printf(" at %s", s.PublishedURL)
			}
			fmt.Printf("\nCreated: %s\nUpdated: %s\n", s.CreatedAt.Format("2006-01-02"), s.UpdatedAt.Format("2006-01-02"))
			return nil
		},
	}
}

func websitesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a website",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := wire.API.DeleteWebsite(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	}
}

func websitesPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish [id]",
		Short: "Publish a website",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := wire.API.PublishWebsite(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Published at %s\n", s.PublishedURL)
			return nil
		},
	}
}

func websitesDomainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domain",
		Short: "Manage custom domains",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add [id] [domain]",
			Short: "Attach a custom domain",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := wire.API.AddCustomDomain(cmd.Context(), id, args[1]); err != nil {
					return err
				}
				fmt.Printf("Domain %s attached\n", args[1])
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove [id] [domain]",
			Short: "Detach a custom domain",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := wire.API.RemoveCustomDomain(cmd.Context(), id, args[1]); err != nil {
					return err
				}
				fmt.Printf("Domain %s detached\n", args[1])
				return nil
			},
		},
	)
	return cmd
}

func websitesVersionsCmd() *cobra.Command {
	var snapshot bool

	cmd := &cobra.Command{
		Use:   "versions [id]",
		Short: "List site versions, or take a new snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if snapshot {
				v, err := wire.API.CreateWebsiteVersion(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Printf("Snapshot %d created\n", v.ID)
				return nil
			}
			versions, err := wire.API.WebsiteVersions(cmd.Context(), id)
			if err != nil {
				return err
			}
			for _, v := range versions {
				fmt.Printf("%d\t%s\n", v.ID, v.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "create a new version instead of listing")
	return cmd
}

func websitesRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [id] [version]",
		Short: "Restore a site to an earlier version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			versionID, err := parseID(args[1])
			if err != nil {
				return err
			}
			if err := wire.API.RestoreWebsiteVersion(cmd.Context(), id, versionID); err != nil {
				return err
			}
			fmt.Println("Restored")
			return nil
		},
	}
}

func websitesStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [id]",
		Short: "Show per-site traffic numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			stats, err := wire.API.WebsiteAnalytics(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Page views: %d\nVisitors: %d\n", stats.PageViews, stats.Visitors)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
