package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Manage the active timer",
	Long: `Start, stop, or check the status of the active timer.

Starting a timer while one is running stops the current one first and saves
its time entry; running time is never discarded.`,
}

var timerStartCmd = &cobra.Command{
	Use:   "start [project_id_or_name] [description]",
	Short: "Start a new timer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := resolveProject(args[0])
		if err != nil {
			return err
		}

		description := ""
		if len(args) > 1 {
			description = args[1]
		}

		rate := project.HourlyRate
		taskID := ""
		if taskArg, _ := cmd.Flags().GetString("task"); taskArg != "" {
			task, ok := appInstance.Tasks.Get(taskArg)
			if !ok {
				return fmt.Errorf("task not found")
			}
			taskID = task.ID
			rate = task.EffectiveRate(project.HourlyRate)
		}

		// A running timer is materialized into an entry before the new
		// one starts; report it so the stop isn't invisible.
		prev := appInstance.Entries.ActiveTimer()
		appInstance.Entries.StartTimer(project.ID, taskID, description, rate)
		if prev != nil {
			fmt.Printf("✓ Previous timer stopped and saved (%s)\n", projectLabel(prev.ProjectID))
		}

		fmt.Printf("✓ Timer started for %s at %.2f/hr\n", project.Name, rate)
		if description != "" {
			fmt.Printf("  Description: %s\n", description)
		}

		return nil
	},
}

var timerStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the active timer and save the time entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := appInstance.Entries.StopTimer()
		if entry == nil {
			fmt.Println("No active timer")
			return nil
		}

		fmt.Printf("✓ Timer stopped\n")
		fmt.Printf("  Project: %s\n", projectLabel(entry.ProjectID))
		fmt.Printf("  Duration: %s\n", formatMinutes(entry.Duration))
		fmt.Printf("  Earnings: $%.2f\n", entry.Earnings)

		return nil
	},
}

var timerStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of the active timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		timer := appInstance.Entries.ActiveTimer()
		if timer == nil {
			fmt.Println("No active timer")
			return nil
		}

		minutes := appInstance.Entries.TimerDuration()
		value := float64(minutes) / 60 * timer.HourlyRate

		fmt.Println("Timer Status: running")
		fmt.Printf("  Project: %s\n", projectLabel(timer.ProjectID))
		if timer.TaskID != "" {
			fmt.Printf("  Task: %s\n", taskLabel(timer.TaskID))
		}
		if timer.Description != "" {
			fmt.Printf("  Description: %s\n", timer.Description)
		}
		fmt.Printf("  Started: %s\n", timer.StartTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("  Elapsed: %s\n", formatMinutes(minutes))
		fmt.Printf("  Current Value: $%.2f\n", value)

		return nil
	},
}

func init() {
	timerStartCmd.Flags().String("task", "", "Task ID to track against")

	timerCmd.AddCommand(timerStartCmd)
	timerCmd.AddCommand(timerStopCmd)
	timerCmd.AddCommand(timerStatusCmd)
}
