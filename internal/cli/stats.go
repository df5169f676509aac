package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show analytics",
	Long:  `Show tracked hours, earnings, task completion, and invoice totals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sum := appInstance.Analytics.Summary()

		fmt.Println("Time")
		fmt.Printf("  Total: %.1fh, $%.2f earned\n", sum.TotalHours, sum.TotalEarnings)
		fmt.Printf("  Average rate: $%.2f/hr\n", sum.AverageHourlyRate)
		fmt.Printf("  Last 7 days: %.1fh, $%.2f\n", sum.ThisWeekHours, sum.ThisWeekEarnings)
		fmt.Printf("  Last 30 days: %.1fh, $%.2f\n", sum.ThisMonthHours, sum.ThisMonthEarnings)
		fmt.Printf("  Daily average: %.1fh\n", sum.AverageDailyHours)

		fmt.Println("\nProjects")
		fmt.Printf("  Active: %d  Completed: %d\n", sum.ActiveProjects, sum.CompletedProjects)

		fmt.Println("\nTasks")
		fmt.Printf("  Total: %d  In progress: %d  Completed: %d (%.0f%%)\n",
			sum.TotalTasks, sum.InProgressTasks, sum.CompletedTasks, sum.TaskCompletionRate)

		fmt.Println("\nInvoices")
		fmt.Printf("  Total: %d ($%.2f)\n", sum.TotalInvoices, sum.TotalInvoiceValue)
		fmt.Printf("  Paid: %d ($%.2f)  Pending: %d ($%.2f)\n",
			sum.PaidInvoices, sum.PaidInvoiceValue, sum.PendingInvoices, sum.PendingInvoiceValue)

		if byProject, _ := cmd.Flags().GetBool("by-project"); byProject {
			fmt.Println("\nHours by project")
			for _, ps := range appInstance.Analytics.ProjectSummaries() {
				fmt.Printf("  %-25s %.1fh  $%.2f\n",
					truncate(projectLabel(ps.ProjectID), 25), ps.Hours, ps.Earnings)
			}
		}

		if year, _ := cmd.Flags().GetInt("revenue-year"); year > 0 {
			fmt.Printf("\nRevenue %d (paid invoices)\n", year)
			revenue := appInstance.Analytics.RevenueByMonth(year)
			for m := time.January; m <= time.December; m++ {
				if revenue[m] > 0 {
					fmt.Printf("  %-10s $%.2f\n", m, revenue[m])
				}
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("by-project", false, "Include per-project breakdown")
	statsCmd.Flags().Int("revenue-year", 0, "Show monthly revenue for a year")
}
