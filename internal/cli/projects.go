package cli

import (
	"fmt"

	"github.com/andy/zentime/internal/domain"
	"github.com/andy/zentime/internal/store"
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
	Long:  `List, add, edit, and delete projects.`,
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects := appInstance.Projects.List()
		if len(projects) == 0 {
			fmt.Println("No projects found")
			return nil
		}

		summaries := appInstance.Analytics.ProjectSummaries()
		hoursByID := make(map[string]float64, len(summaries))
		earningsByID := make(map[string]float64, len(summaries))
		for _, s := range summaries {
			hoursByID[s.ProjectID] = s.Hours
			earningsByID[s.ProjectID] = s.Earnings
		}

		fmt.Printf("%-10s %-25s %-20s %-10s %-10s %-8s %-10s\n",
			"ID", "Name", "Client", "Rate", "Status", "Hours", "Earnings")
		fmt.Println("--------------------------------------------------------------------------------------------------")

		for _, p := range projects {
			fmt.Printf("%-10s %-25s %-20s $%-9.2f %-10s %-8.1f $%-9.2f\n",
				shortID(p.ID),
				truncate(p.Name, 25),
				truncate(p.Client, 20),
				p.HourlyRate,
				p.Status,
				hoursByID[p.ID],
				earningsByID[p.ID],
			)
		}

		fmt.Printf("\nTotal: %d project(s)\n", len(projects))
		return nil
	},
}

var projectsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _ := cmd.Flags().GetString("client")
		description, _ := cmd.Flags().GetString("description")
		rate, _ := cmd.Flags().GetFloat64("rate")
		currency, _ := cmd.Flags().GetString("currency")

		if !cmd.Flags().Changed("rate") {
			rate = appInstance.Config.Defaults.HourlyRate
		}
		if currency == "" {
			currency = appInstance.Config.Defaults.Currency
		}

		project := domain.NewProject(args[0], client, description, rate, currency)
		if err := project.Validate(); err != nil {
			return fmt.Errorf("invalid project: %w", err)
		}

		appInstance.Projects.Add(project)

		fmt.Printf("✓ Project created: %s (ID: %s)\n", project.Name, shortID(project.ID))
		fmt.Printf("  Client: %s\n", project.Client)
		fmt.Printf("  Hourly Rate: %.2f %s\n", project.HourlyRate, project.Currency)

		return nil
	},
}

var projectsEditCmd = &cobra.Command{
	Use:   "edit [id_or_name]",
	Short: "Edit an existing project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := resolveProject(args[0])
		if err != nil {
			return err
		}

		var upd store.ProjectUpdate
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			upd.Name = &name
		}
		if cmd.Flags().Changed("client") {
			client, _ := cmd.Flags().GetString("client")
			upd.Client = &client
		}
		if cmd.Flags().Changed("description") {
			description, _ := cmd.Flags().GetString("description")
			upd.Description = &description
		}
		if cmd.Flags().Changed("rate") {
			rate, _ := cmd.Flags().GetFloat64("rate")
			upd.HourlyRate = &rate
		}
		if cmd.Flags().Changed("currency") {
			currency, _ := cmd.Flags().GetString("currency")
			upd.Currency = &currency
		}
		if cmd.Flags().Changed("status") {
			statusStr, _ := cmd.Flags().GetString("status")
			status := domain.ProjectStatus(statusStr)
			upd.Status = &status
		}

		appInstance.Projects.Update(project.ID, upd)

		fmt.Printf("✓ Project updated: %s\n", args[0])
		return nil
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete [id_or_name]",
	Short: "Delete a project",
	Long: `Delete a project. Tasks, time entries, and invoices that reference the
project are kept; they will show "Unknown Project" afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := resolveProject(args[0])
		if err != nil {
			return err
		}

		appInstance.Projects.Delete(project.ID)
		fmt.Printf("✓ Project deleted: %s\n", project.Name)
		return nil
	},
}

var projectsShowCmd = &cobra.Command{
	Use:   "show [id_or_name]",
	Short: "Show project details with tracked totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := resolveProject(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Project: %s\n", project.Name)
		fmt.Printf("  ID: %s\n", project.ID)
		fmt.Printf("  Client: %s\n", project.Client)
		if project.Description != "" {
			fmt.Printf("  Description: %s\n", project.Description)
		}
		fmt.Printf("  Rate: %.2f %s/hr\n", project.HourlyRate, project.Currency)
		fmt.Printf("  Status: %s\n", project.Status)
		fmt.Printf("  Created: %s\n", project.CreatedAt.Format("2006-01-02"))

		for _, s := range appInstance.Analytics.ProjectSummaries() {
			if s.ProjectID == project.ID {
				fmt.Printf("  Tracked: %.1fh across %d entries, $%.2f earned\n",
					s.Hours, s.Entries, s.Earnings)
			}
		}

		tasks := appInstance.Tasks.ListByProject(project.ID)
		if len(tasks) > 0 {
			fmt.Printf("\nTasks (%d):\n", len(tasks))
			for _, t := range tasks {
				fmt.Printf("  [%-11s] %s (%s)\n", t.Status, t.Name, t.Priority)
			}
		}

		return nil
	},
}

func init() {
	projectsAddCmd.Flags().String("client", "", "Client name (required)")
	projectsAddCmd.Flags().String("description", "", "Project description")
	projectsAddCmd.Flags().Float64("rate", 0, "Hourly rate")
	projectsAddCmd.Flags().String("currency", "", "Currency code (default from config)")

	projectsEditCmd.Flags().String("name", "", "New name")
	projectsEditCmd.Flags().String("client", "", "New client name")
	projectsEditCmd.Flags().String("description", "", "New description")
	projectsEditCmd.Flags().Float64("rate", 0, "New hourly rate")
	projectsEditCmd.Flags().String("currency", "", "New currency code")
	projectsEditCmd.Flags().String("status", "", "New status (active, paused, completed)")

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsAddCmd)
	projectsCmd.AddCommand(projectsEditCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
	projectsCmd.AddCommand(projectsShowCmd)
}
