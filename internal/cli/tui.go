package cli

import (
	"io"
	"log/slog"
	"priority-task-list/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Manage a task list in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			// the terminal belongs to the UI, so board logs are dropped
			log := slog.New(slog.NewTextHandler(io.Discard, nil))

			board, err := newBoardFactory(cfg, log)()
			if err != nil {
				return err
			}

			p := tea.NewProgram(tui.NewModel(board), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}
