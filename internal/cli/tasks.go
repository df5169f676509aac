package cli

import (
	"fmt"

	"github.com/andy/zentime/internal/domain"
	"github.com/andy/zentime/internal/store"
	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage tasks",
	Long:  `List, add, edit, complete, and delete tasks within projects.`,
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, optionally for one project",
	RunE: func(cmd *cobra.Command, args []string) error {
		projectArg, _ := cmd.Flags().GetString("project")

		var tasks []*domain.Task
		if projectArg != "" {
			project, err := resolveProject(projectArg)
			if err != nil {
				return err
			}
			tasks = appInstance.Tasks.ListByProject(project.ID)
		} else {
			tasks = appInstance.Tasks.List()
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found")
			return nil
		}

		fmt.Printf("%-10s %-25s %-20s %-12s %-8s %-10s\n",
			"ID", "Name", "Project", "Status", "Priority", "Completed")
		fmt.Println("-------------------------------------------------------------------------------------------")

		for _, t := range tasks {
			completed := "-"
			if t.CompletedAt != nil {
				completed = t.CompletedAt.Format("2006-01-02")
			}
			fmt.Printf("%-10s %-25s %-20s %-12s %-8s %-10s\n",
				shortID(t.ID),
				truncate(t.Name, 25),
				truncate(projectLabel(t.ProjectID), 20),
				t.Status,
				t.Priority,
				completed,
			)
		}

		fmt.Printf("\nTotal: %d task(s)\n", len(tasks))
		return nil
	},
}

var tasksAddCmd = &cobra.Command{
	Use:   "add [project_id_or_name] [name]",
	Short: "Add a task to a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := resolveProject(args[0])
		if err != nil {
			return err
		}

		description, _ := cmd.Flags().GetString("description")
		priorityStr, _ := cmd.Flags().GetString("priority")

		task := domain.NewTask(project.ID, args[1], description, domain.TaskPriority(priorityStr))
		if cmd.Flags().Changed("rate") {
			rate, _ := cmd.Flags().GetFloat64("rate")
			task.HourlyRate = &rate
		}

		if err := task.Validate(); err != nil {
			return fmt.Errorf("invalid task: %w", err)
		}

		appInstance.Tasks.Add(task)

		fmt.Printf("✓ Task created: %s (ID: %s)\n", task.Name, shortID(task.ID))
		fmt.Printf("  Project: %s\n", project.Name)
		fmt.Printf("  Rate: %.2f/hr\n", task.EffectiveRate(project.HourlyRate))

		return nil
	},
}

var tasksEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit an existing task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, ok := appInstance.Tasks.Get(args[0])
		if !ok {
			return fmt.Errorf("task not found")
		}

		var upd store.TaskUpdate
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			upd.Name = &name
		}
		if cmd.Flags().Changed("description") {
			description, _ := cmd.Flags().GetString("description")
			upd.Description = &description
		}
		if cmd.Flags().Changed("rate") {
			rate, _ := cmd.Flags().GetFloat64("rate")
			upd.HourlyRate = &rate
		}
		if clear, _ := cmd.Flags().GetBool("clear-rate"); clear {
			upd.ClearRate = true
		}
		if cmd.Flags().Changed("status") {
			statusStr, _ := cmd.Flags().GetString("status")
			status := domain.TaskStatus(statusStr)
			upd.Status = &status
		}
		if cmd.Flags().Changed("priority") {
			priorityStr, _ := cmd.Flags().GetString("priority")
			priority := domain.TaskPriority(priorityStr)
			upd.Priority = &priority
		}

		appInstance.Tasks.Update(task.ID, upd)

		fmt.Printf("✓ Task updated: %s\n", task.Name)
		return nil
	},
}

var tasksCompleteCmd = &cobra.Command{
	Use:   "complete [id]",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, ok := appInstance.Tasks.Get(args[0])
		if !ok {
			return fmt.Errorf("task not found")
		}

		status := domain.TaskStatusCompleted
		appInstance.Tasks.Update(task.ID, store.TaskUpdate{Status: &status})

		fmt.Printf("✓ Task completed: %s\n", task.Name)
		return nil
	},
}

var tasksDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, ok := appInstance.Tasks.Get(args[0])
		if !ok {
			return fmt.Errorf("task not found")
		}

		appInstance.Tasks.Delete(task.ID)
		fmt.Printf("✓ Task deleted: %s\n", task.Name)
		return nil
	},
}

func init() {
	tasksListCmd.Flags().String("project", "", "Filter by project ID or name")

	tasksAddCmd.Flags().String("description", "", "Task description")
	tasksAddCmd.Flags().String("priority", "medium", "Priority (low, medium, high)")
	tasksAddCmd.Flags().Float64("rate", 0, "Hourly rate override")

	tasksEditCmd.Flags().String("name", "", "New name")
	tasksEditCmd.Flags().String("description", "", "New description")
	tasksEditCmd.Flags().Float64("rate", 0, "New hourly rate override")
	tasksEditCmd.Flags().Bool("clear-rate", false, "Remove the rate override")
	tasksEditCmd.Flags().String("status", "", "New status (todo, in-progress, completed)")
	tasksEditCmd.Flags().String("priority", "", "New priority (low, medium, high)")

	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksAddCmd)
	tasksCmd.AddCommand(tasksEditCmd)
	tasksCmd.AddCommand(tasksCompleteCmd)
	tasksCmd.AddCommand(tasksDeleteCmd)
}
