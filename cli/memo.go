package cli

import (
	"tesla-notes/models"
	"tesla-notes/services"

	"github.com/spf13/cobra"
)

func newMemoCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memo",
		Short: "Create, list and edit memos",
	}

	cmd.AddCommand(newMemoAddCommand(s))
	cmd.AddCommand(newMemoListCommand(s))
	cmd.AddCommand(newMemoShowCommand(s))
	cmd.AddCommand(newMemoEditCommand(s))
	cmd.AddCommand(newMemoRemoveCommand(s))
	cmd.AddCommand(newMemoSearchCommand(s))
	cmd.AddCommand(newMemoDayCommand(s))
	cmd.AddCommand(newMemoToggleCommand(s))

	return cmd
}

func newMemoAddCommand(s *session) *cobra.Command {
	var category, targetDate string

	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Add a memo",
		Example: `  tesla-notes memo add "rotate tires"
  tesla-notes memo add "quarterly review" --category work --target-date 2024-01-15`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.CreateMemoRequest{
				Content:    args[0],
				Category:   changedString(cmd, "category", category),
				TargetDate: changedString(cmd, "target-date", targetDate),
			}
			if err := s.app.Validator.Validate(&req); err != nil {
				return err
			}

			memo, err := s.app.MemoService.Create(req.Content, req.Category, req.TargetDate)
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), memo)
		},
	}

	cmd.Flags().StringVar(&category, "category", models.DefaultCategory, "memo category")
	cmd.Flags().StringVar(&targetDate, "target-date", "", "day the memo is for (YYYY-MM-DD)")

	return cmd
}

func newMemoListCommand(s *session) *cobra.Command {
	var (
		limit, offset int
		category      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List non-archived memos, pinned first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			memos, err := s.app.MemoService.List(limit, offset, changedString(cmd, "category", category))
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), memos)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", services.DefaultLimit, "maximum number of memos")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of memos to skip")
	cmd.Flags().StringVar(&category, "category", "", "only list this category")

	return cmd
}

func newMemoShowCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one memo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			memo, err := s.app.MemoService.Get(id)
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), memo)
		},
	}
}

func newMemoEditCommand(s *session) *cobra.Command {
	var (
		content, category, targetDate, status string
		pinned, archived                      bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the given fields of a memo",
		Long: `Change the given fields of a memo.

Only flags that are passed are written; everything else keeps its stored value.`,
		Example: `  tesla-notes memo edit 3 --pinned
  tesla-notes memo edit 3 --content "charge to 80%" --status completed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			patch := models.MemoPatch{
				Content:    changedString(cmd, "content", content),
				Category:   changedString(cmd, "category", category),
				TargetDate: changedString(cmd, "target-date", targetDate),
				Pinned:     changedBool(cmd, "pinned", pinned),
				Archived:   changedBool(cmd, "archived", archived),
			}
			if cmd.Flags().Changed("status") {
				cs := models.CompletionStatus(status)
				patch.CompletionStatus = &cs
			}
			if err := s.app.Validator.Validate(&patch); err != nil {
				return err
			}

			memo, err := s.app.MemoService.Update(id, patch)
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), memo)
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "new content")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&targetDate, "target-date", "", "new target date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "pending, completed or incomplete")
	cmd.Flags().BoolVar(&pinned, "pinned", false, "pin or unpin (--pinned=false)")
	cmd.Flags().BoolVar(&archived, "archived", false, "archive or restore (--archived=false)")

	return cmd
}

func newMemoRemoveCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Short:   "Delete a memo",
		Aliases: []string{"delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := s.app.MemoService.Delete(id); err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), map[string]any{"deleted": id})
		},
	}
}

func newMemoSearchCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Find memos whose content contains query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			memos, err := s.app.MemoService.Search(query)
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), memos)
		},
	}
}

func newMemoDayCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "day <date>",
		Short: "List memos targeted at or created on a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}

			memos, err := s.app.MemoService.ListByDate(date)
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), memos)
		},
	}
}

func newMemoToggleCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Advance pending, completed, incomplete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			memo, err := s.app.MemoService.ToggleStatus(id)
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), memo)
		},
	}
}
