package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func templatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates [id]",
		Short: "Browse site templates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				t, err := wire.API.Template(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Printf("%s — %s\n%s\nPreview: %s\n", t.ID, t.Name, t.Description, t.Preview)
				return nil
			}
			templates, err := wire.API.Templates(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range templates {
				fmt.Printf("%s\t%s\t%s\n", t.ID, t.Name, t.Description)
			}
			return nil
		},
	}
}
