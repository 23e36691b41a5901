package commands

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"threeclick/internal/domain"
)

func chatCmd() *cobra.Command {
	var history bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with us",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := wire.Chat

			if history {
				for _, m := range w.Messages() {
					printMessage(m)
				}
				return nil
			}

			w.Toggle()
			for _, m := range w.Messages() {
				printMessage(m)
			}
			fmt.Println("Type your message; blank line to leave the chat.")

			in := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Print("> ")
				if !in.Scan() || in.Text() == "" {
					break
				}
				reply, ok := w.Send(in.Text())
				if !ok {
					continue
				}
				fmt.Printf("agent: %s\n", reply)
			}
			w.Toggle()
			return nil
		},
	}
	cmd.Flags().BoolVar(&history, "history", false, "print the saved transcript and exit")
	return cmd
}

func printMessage(m domain.ChatMessage) {
	fmt.Printf("%s %s: %s\n", m.Timestamp.Format("15:04"), m.Sender, m.Text)
}
