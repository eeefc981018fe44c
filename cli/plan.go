package cli

import (
	"tesla-notes/models"

	"github.com/spf13/cobra"
)

func newPlanCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage per-day plans",
	}

	cmd.AddCommand(newPlanAddCommand(s))
	cmd.AddCommand(newPlanDayCommand(s))
	cmd.AddCommand(newPlanShowCommand(s))
	cmd.AddCommand(newPlanEditCommand(s))
	cmd.AddCommand(newPlanRemoveCommand(s))
	cmd.AddCommand(newPlanToggleCommand(s))

	return cmd
}

func newPlanAddCommand(s *session) *cobra.Command {
	var (
		description, category string
		priority              int64
	)

	cmd := &cobra.Command{
		Use:     "add <date> <title>",
		Short:   "Add a plan for a day",
		Example: `  tesla-notes plan add 2024-03-01 "Ship release" --priority 5`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.CreatePlanRequest{
				PlanDate:    args[0],
				Title:       args[1],
				Description: changedString(cmd, "description", description),
				Category:    changedString(cmd, "category", category),
				Priority:    changedInt64(cmd, "priority", priority),
			}
			if err := s.app.Validator.Validate(&req); err != nil {
				return err
			}

			plan, err := s.app.PlanService.Create(req.PlanDate, req.Title, req.Description, req.Category, req.Priority)
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), plan)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "longer description")
	cmd.Flags().StringVar(&category, "category", models.DefaultCategory, "plan category")
	cmd.Flags().Int64Var(&priority, "priority", 0, "higher sorts first")

	return cmd
}

func newPlanDayCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "day <date>",
		Short: "List a day's plans by priority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}

			plans, err := s.app.PlanService.ListByDate(date)
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), plans)
		},
	}
}

func newPlanShowCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			plan, err := s.app.PlanService.Get(id)
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), plan)
		},
	}
}

func newPlanEditCommand(s *session) *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a plan's title or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			patch := models.PlanPatch{
				Title:       changedString(cmd, "title", title),
				Description: changedString(cmd, "description", description),
			}
			if err := s.app.Validator.Validate(&patch); err != nil {
				return err
			}

			plan, err := s.app.PlanService.Update(id, patch)
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), plan)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")

	return cmd
}

func newPlanRemoveCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Short:   "Delete a plan",
		Aliases: []string{"delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := s.app.PlanService.Delete(id); err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), map[string]any{"deleted": id})
		},
	}
}

func newPlanToggleCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a plan done or not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			plan, err := s.app.PlanService.ToggleCompletion(id)
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), plan)
		},
	}
}
