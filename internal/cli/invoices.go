package cli

import (
	"fmt"
	"time"

	"github.com/andy/zentime/internal/domain"
	"github.com/andy/zentime/internal/service"
	"github.com/spf13/cobra"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Manage invoices",
	Long:  `Generate invoices from tracked time and manage their lifecycle.`,
}

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		invoices := appInstance.Invoices.List()

		if statusArg, _ := cmd.Flags().GetString("status"); statusArg != "" {
			invoices = appInstance.Invoices.ListByStatus(domain.InvoiceStatus(statusArg))
		}

		if len(invoices) == 0 {
			fmt.Println("No invoices found")
			return nil
		}

		fmt.Printf("%-14s %-20s %-20s %-9s %-12s %-10s\n",
			"Number", "Client", "Project", "Status", "Due", "Total")
		fmt.Println("-------------------------------------------------------------------------------------------")

		var total float64
		for _, inv := range invoices {
			fmt.Printf("%-14s %-20s %-20s %-9s %-12s $%-9.2f\n",
				inv.InvoiceNumber,
				truncate(inv.ClientName, 20),
				truncate(inv.ProjectName, 20),
				inv.Status,
				inv.DueDate,
				inv.Total,
			)
			total += inv.Total
		}

		fmt.Printf("\nTotal: %d invoice(s), $%.2f\n", len(invoices), total)
		return nil
	},
}

var invoicesGenerateCmd = &cobra.Command{
	Use:   "generate [project_id_or_name]",
	Short: "Generate an invoice from tracked time",
	Long: `Generate an invoice for a project from finished time entries in a date
range. Line items snapshot each entry's description, duration, rate, and
earnings; later edits to the entries do not change the invoice.

By default all eligible entries in the range are billed. Use --entry to
select specific entries instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := resolveProject(args[0])
		if err != nil {
			return err
		}

		now := time.Now()
		startDate, _ := cmd.Flags().GetString("from")
		endDate, _ := cmd.Flags().GetString("to")
		if startDate == "" {
			startDate = now.AddDate(0, 0, -30).Format(domain.DateLayout)
		}
		if endDate == "" {
			endDate = now.Format(domain.DateLayout)
		}

		entryIDs, _ := cmd.Flags().GetStringSlice("entry")
		if len(entryIDs) == 0 {
			for _, e := range appInstance.InvoiceService.EligibleEntries(project.ID, startDate, endDate) {
				entryIDs = append(entryIDs, e.ID)
			}
		}
		if len(entryIDs) == 0 {
			return fmt.Errorf("no billable entries for %s between %s and %s",
				project.Name, startDate, endDate)
		}

		taxRate := appInstance.Config.Invoice.TaxRate
		if cmd.Flags().Changed("tax") {
			taxRate, _ = cmd.Flags().GetFloat64("tax")
		}

		dueDate, _ := cmd.Flags().GetString("due")
		if dueDate == "" {
			dueDate = now.AddDate(0, 0, appInstance.Config.Invoice.DueDays).Format(domain.DateLayout)
		}
		notes, _ := cmd.Flags().GetString("notes")

		invoice, err := appInstance.InvoiceService.Generate(service.GenerateParams{
			ProjectID: project.ID,
			EntryIDs:  entryIDs,
			TaxRate:   taxRate,
			IssueDate: now.Format(domain.DateLayout),
			DueDate:   dueDate,
			Notes:     notes,
		})
		if err != nil {
			return fmt.Errorf("failed to generate invoice: %w", err)
		}

		fmt.Printf("✓ Invoice generated: %s\n", invoice.InvoiceNumber)
		fmt.Printf("  Client: %s\n", invoice.ClientName)
		fmt.Printf("  Line items: %d\n", len(invoice.LineItems))
		fmt.Printf("  Subtotal: $%.2f\n", invoice.Subtotal)
		fmt.Printf("  Tax (%.1f%%): $%.2f\n", invoice.TaxRate, invoice.TaxAmount)
		fmt.Printf("  Total: $%.2f\n", invoice.Total)

		return nil
	},
}

var invoicesShowCmd = &cobra.Command{
	Use:   "show [number_or_id]",
	Short: "Show an invoice with its line items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invoice, ok := appInstance.Invoices.GetByNumber(args[0])
		if !ok {
			invoice, ok = appInstance.Invoices.Get(args[0])
		}
		if !ok {
			return fmt.Errorf("invoice not found")
		}

		fmt.Printf("Invoice %s (%s)\n", invoice.InvoiceNumber, invoice.Status)
		fmt.Printf("  Client: %s\n", invoice.ClientName)
		fmt.Printf("  Project: %s\n", invoice.ProjectName)
		fmt.Printf("  Issued: %s  Due: %s\n", invoice.IssueDate, invoice.DueDate)
		if invoice.SentAt != nil {
			fmt.Printf("  Sent: %s\n", invoice.SentAt.Format("2006-01-02"))
		}
		if invoice.PaidAt != nil {
			fmt.Printf("  Paid: %s\n", invoice.PaidAt.Format("2006-01-02"))
		}

		fmt.Printf("\n%-12s %-30s %-8s %-8s %-10s\n", "Date", "Description", "Time", "Rate", "Amount")
		fmt.Println("-----------------------------------------------------------------------")
		for _, item := range invoice.LineItems {
			fmt.Printf("%-12s %-30s %-8s $%-7.2f $%-9.2f\n",
				item.Date,
				truncate(item.Description, 30),
				formatMinutes(item.Duration),
				item.HourlyRate,
				item.Amount,
			)
		}

		fmt.Printf("\n  Subtotal: $%.2f\n", invoice.Subtotal)
		fmt.Printf("  Tax (%.1f%%): $%.2f\n", invoice.TaxRate, invoice.TaxAmount)
		fmt.Printf("  Total: $%.2f\n", invoice.Total)
		if invoice.Notes != "" {
			fmt.Printf("\n  Notes: %s\n", invoice.Notes)
		}

		return nil
	},
}

var invoicesSentCmd = &cobra.Command{
	Use:   "sent [number_or_id]",
	Short: "Mark an invoice as sent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invoice, err := resolveInvoice(args[0])
		if err != nil {
			return err
		}
		if err := appInstance.InvoiceService.MarkSent(invoice.ID); err != nil {
			return err
		}
		fmt.Printf("✓ Invoice %s marked as sent\n", invoice.InvoiceNumber)
		return nil
	},
}

var invoicesPaidCmd = &cobra.Command{
	Use:   "paid [number_or_id]",
	Short: "Mark an invoice as paid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invoice, err := resolveInvoice(args[0])
		if err != nil {
			return err
		}
		if err := appInstance.InvoiceService.MarkPaid(invoice.ID); err != nil {
			return err
		}
		fmt.Printf("✓ Invoice %s marked as paid\n", invoice.InvoiceNumber)
		return nil
	},
}

var invoicesOverdueCmd = &cobra.Command{
	Use:   "check-overdue",
	Short: "Flag sent invoices past their due date",
	RunE: func(cmd *cobra.Command, args []string) error {
		flagged := appInstance.InvoiceService.CheckOverdue()
		if flagged == 0 {
			fmt.Println("No overdue invoices")
			return nil
		}
		fmt.Printf("✓ %d invoice(s) flagged as overdue\n", flagged)
		return nil
	},
}

var invoicesDeleteCmd = &cobra.Command{
	Use:   "delete [number_or_id]",
	Short: "Delete an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invoice, err := resolveInvoice(args[0])
		if err != nil {
			return err
		}
		appInstance.Invoices.Delete(invoice.ID)
		fmt.Printf("✓ Invoice %s deleted\n", invoice.InvoiceNumber)
		return nil
	},
}

// resolveInvoice resolves an invoice by number or by ID
func resolveInvoice(numberOrID string) (*domain.Invoice, error) {
	if inv, ok := appInstance.Invoices.GetByNumber(numberOrID); ok {
		return inv, nil
	}
	if inv, ok := appInstance.Invoices.Get(numberOrID); ok {
		return inv, nil
	}
	return nil, fmt.Errorf("invoice '%s' not found", numberOrID)
}

func init() {
	invoicesListCmd.Flags().String("status", "", "Filter by status (draft, sent, paid, overdue)")

	invoicesGenerateCmd.Flags().String("from", "", "Range start as YYYY-MM-DD (default: 30 days ago)")
	invoicesGenerateCmd.Flags().String("to", "", "Range end as YYYY-MM-DD (default: today)")
	invoicesGenerateCmd.Flags().StringSlice("entry", nil, "Bill only these entry IDs")
	invoicesGenerateCmd.Flags().Float64("tax", 0, "Tax rate in percent")
	invoicesGenerateCmd.Flags().String("due", "", "Due date as YYYY-MM-DD (default from config)")
	invoicesGenerateCmd.Flags().String("notes", "", "Invoice notes")

	invoicesCmd.AddCommand(invoicesListCmd)
	invoicesCmd.AddCommand(invoicesGenerateCmd)
	invoicesCmd.AddCommand(invoicesShowCmd)
	invoicesCmd.AddCommand(invoicesSentCmd)
	invoicesCmd.AddCommand(invoicesPaidCmd)
	invoicesCmd.AddCommand(invoicesOverdueCmd)
	invoicesCmd.AddCommand(invoicesDeleteCmd)
}
