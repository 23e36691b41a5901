package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"threeclick/internal/builder"
	"threeclick/internal/domain"
)

func builderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "builder",
		Short: "Create a website with the 3-step wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := wire.Session.RequireUser()
			if err != nil {
				return err
			}

			w := builder.New(wire.API, logger)
			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			if err := stepBusinessInfo(w, in, out); err != nil {
				return err
			}
			if err := stepServicesAndHours(w, in, out); err != nil {
				return err
			}
			return stepReview(cmd, w, in, out, user)
		},
	}
}

func stepBusinessInfo(w *builder.Wizard, in *bufio.Scanner, out io.Writer) error {
	fmt.Fprintln(out, "Step 1 of 3: business info")
	for {
		info := builder.BusinessInfo{
			BusinessName: prompt(in, out, "Business name"),
			Phone:        prompt(in, out, "Phone"),
			Email:        prompt(in, out, "Email"),
			Address:      prompt(in, out, "Address"),
			Location:     prompt(in, out, "Location (suburb/city)"),
		}
		if err := w.SetBusinessInfo(info); err != nil {
			return err
		}
		if err := w.Next(); err == nil {
			return nil
		}
		fmt.Fprintln(out, "All fields are required; let's try again.")
	}
}

func stepServicesAndHours(w *builder.Wizard, in *bufio.Scanner, out io.Writer) error {
	fmt.Fprintln(out, "Step 2 of 3: services & opening hours")
	fmt.Fprintln(out, "Enter services one per line; blank line to finish.")
	for {
		s := prompt(in, out, "Service")
		if s == "" {
			break
		}
		if err := w.AddService(s); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Opening hours (press Enter to keep the shown default, or type e.g. 9:00-17:00 or Closed):")
	for _, day := range domain.Weekdays {
		current := w.Draft().BusinessHours[day]
		answer := prompt(in, out, fmt.Sprintf("%s [%s-%s]", day, current.Open, current.Close))
		if answer == "" {
			continue
		}
		if err := w.SetHours(day, parseHours(answer)); err != nil {
			return err
		}
	}
	return w.Next()
}

func stepReview(cmd *cobra.Command, w *builder.Wizard, in *bufio.Scanner, out io.Writer, user domain.User) error {
	d := w.Draft()
	fmt.Fprintln(out, "Step 3 of 3: review")
	fmt.Fprintf(out, "  %s — %s, %s\n", d.BusinessName, d.Address, d.Location)
	fmt.Fprintf(out, "  %s / %s\n", d.Phone, d.Email)
	if len(d.Services) > 0 {
		fmt.Fprintf(out, "  Services: %s\n", strings.Join(d.Services, ", "))
	}
	for _, day := range domain.Weekdays {
		h := d.BusinessHours[day]
		fmt.Fprintf(out, "  %-9s %s-%s\n", day, h.Open, h.Close)
	}

	if answer := prompt(in, out, "Create this website? [y/N]"); !strings.EqualFold(answer, "y") {
		fmt.Fprintln(out, "Cancelled")
		return nil
	}

	resp, err := w.Submit(cmd.Context(), user)
	if err != nil {
		return fmt.Errorf("%s", w.Err())
	}
	fmt.Fprintf(out, "%s\nWebsite id %d — %s\n", resp.Message, resp.ID, resp.URL)
	return nil
}

func prompt(in *bufio.Scanner, out io.Writer, label string) string {
	fmt.Fprintf(out, "%s: ", label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

// parseHours splits "9:00-17:00" into open and close; anything without a
// dash (like "Closed") applies to both.
func parseHours(s string) domain.DayHours {
	from, until, ok := strings.Cut(s, "-")
	if !ok {
		return domain.DayHours{Open: s, Close: s}
	}
	return domain.DayHours{Open: strings.TrimSpace(from), Close: strings.TrimSpace(until)}
}
