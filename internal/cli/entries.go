package cli

import (
	"fmt"
	"time"

	"github.com/andy/zentime/internal/domain"
	"github.com/andy/zentime/internal/store"
	"github.com/spf13/cobra"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Manage time entries",
	Long:  `List, add, edit, and delete time entries.`,
}

var entriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List time entries, optionally for one project or task",
	RunE: func(cmd *cobra.Command, args []string) error {
		projectArg, _ := cmd.Flags().GetString("project")
		taskArg, _ := cmd.Flags().GetString("task")

		var entries []*domain.TimeEntry
		switch {
		case taskArg != "":
			entries = appInstance.Entries.ListByTask(taskArg)
		case projectArg != "":
			project, err := resolveProject(projectArg)
			if err != nil {
				return err
			}
			entries = appInstance.Entries.ListByProject(project.ID)
		default:
			entries = appInstance.Entries.List()
		}

		if len(entries) == 0 {
			fmt.Println("No time entries found")
			return nil
		}

		fmt.Printf("%-10s %-12s %-20s %-25s %-8s %-10s\n",
			"ID", "Date", "Project", "Description", "Time", "Earnings")
		fmt.Println("-------------------------------------------------------------------------------------------")

		var totalMinutes int
		var totalEarnings float64
		for _, e := range entries {
			fmt.Printf("%-10s %-12s %-20s %-25s %-8s $%-9.2f\n",
				shortID(e.ID),
				e.Date(),
				truncate(projectLabel(e.ProjectID), 20),
				truncate(e.Description, 25),
				formatMinutes(e.Duration),
				e.Earnings,
			)
			totalMinutes += e.Duration
			totalEarnings += e.Earnings
		}

		fmt.Printf("\nTotal: %d entries, %s, $%.2f\n",
			len(entries), formatMinutes(totalMinutes), totalEarnings)
		return nil
	},
}

var entriesAddCmd = &cobra.Command{
	Use:   "add [project_id_or_name] [minutes] [description]",
	Short: "Log a manual time entry",
	Long: `Log a manual time entry against a project. The hourly rate is frozen at
creation time; later project rate changes do not affect it. Earnings are
always derived as duration/60 x rate.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := resolveProject(args[0])
		if err != nil {
			return err
		}

		var minutes int
		if _, err := fmt.Sscanf(args[1], "%d", &minutes); err != nil || minutes < 0 {
			return fmt.Errorf("invalid duration '%s': expected whole minutes", args[1])
		}

		description := ""
		if len(args) > 2 {
			description = args[2]
		}

		rate := project.HourlyRate
		if cmd.Flags().Changed("rate") {
			rate, _ = cmd.Flags().GetFloat64("rate")
		}

		taskID := ""
		if taskArg, _ := cmd.Flags().GetString("task"); taskArg != "" {
			task, ok := appInstance.Tasks.Get(taskArg)
			if !ok {
				return fmt.Errorf("task not found")
			}
			taskID = task.ID
			if !cmd.Flags().Changed("rate") {
				rate = task.EffectiveRate(project.HourlyRate)
			}
		}

		start := time.Now().Add(-time.Duration(minutes) * time.Minute)
		if when, _ := cmd.Flags().GetString("date"); when != "" {
			day, err := time.ParseInLocation(domain.DateLayout, when, time.Local)
			if err != nil {
				return fmt.Errorf("invalid date '%s': expected YYYY-MM-DD", when)
			}
			start = day
		}

		entry := domain.NewTimeEntry(project.ID, taskID, description, start, minutes, rate)
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("invalid entry: %w", err)
		}

		appInstance.Entries.Add(entry)

		fmt.Printf("✓ Entry logged: %s on %s\n", formatMinutes(entry.Duration), project.Name)
		fmt.Printf("  Earnings: $%.2f\n", entry.Earnings)

		return nil
	},
}

var entriesEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a time entry",
	Long: `Edit a time entry. Changing the duration or rate re-derives earnings;
earnings cannot be set directly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, ok := appInstance.Entries.Get(args[0])
		if !ok {
			return fmt.Errorf("time entry not found")
		}

		var upd store.EntryUpdate
		if cmd.Flags().Changed("description") {
			description, _ := cmd.Flags().GetString("description")
			upd.Description = &description
		}
		if cmd.Flags().Changed("minutes") {
			minutes, _ := cmd.Flags().GetInt("minutes")
			upd.Duration = &minutes
		}
		if cmd.Flags().Changed("rate") {
			rate, _ := cmd.Flags().GetFloat64("rate")
			upd.HourlyRate = &rate
		}

		appInstance.Entries.Update(entry.ID, upd)

		updated, _ := appInstance.Entries.Get(entry.ID)
		fmt.Printf("✓ Entry updated: %s, $%.2f\n",
			formatMinutes(updated.Duration), updated.Earnings)
		return nil
	},
}

var entriesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a time entry",
	Long: `Delete a time entry. Invoice line items snapshotted from the entry are
not affected.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, ok := appInstance.Entries.Get(args[0])
		if !ok {
			return fmt.Errorf("time entry not found")
		}

		appInstance.Entries.Delete(entry.ID)
		fmt.Printf("✓ Entry deleted (%s on %s)\n",
			formatMinutes(entry.Duration), projectLabel(entry.ProjectID))
		return nil
	},
}

func init() {
	entriesListCmd.Flags().String("project", "", "Filter by project ID or name")
	entriesListCmd.Flags().String("task", "", "Filter by task ID")

	entriesAddCmd.Flags().String("task", "", "Task ID to log against")
	entriesAddCmd.Flags().Float64("rate", 0, "Hourly rate override (default: project or task rate)")
	entriesAddCmd.Flags().String("date", "", "Entry date as YYYY-MM-DD (default: today)")

	entriesEditCmd.Flags().String("description", "", "New description")
	entriesEditCmd.Flags().Int("minutes", 0, "New duration in minutes")
	entriesEditCmd.Flags().Float64("rate", 0, "New hourly rate")

	entriesCmd.AddCommand(entriesListCmd)
	entriesCmd.AddCommand(entriesAddCmd)
	entriesCmd.AddCommand(entriesEditCmd)
	entriesCmd.AddCommand(entriesDeleteCmd)
}
