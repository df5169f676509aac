package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete stored data",
	Long: `Delete stored collections.

Examples:
  zentime reset entries     # Delete all time entries and the active timer
  zentime reset invoices    # Delete all invoices
  zentime reset all         # Wipe projects, tasks, entries, invoices, timer`,
}

var resetEntriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Delete all time entries and the active timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will delete ALL time entries and the active timer. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		appInstance.Entries.StopTimer()
		for _, e := range appInstance.Entries.List() {
			appInstance.Entries.Delete(e.ID)
		}

		fmt.Println("All time entries and timer state have been deleted.")
		return nil
	},
}

var resetInvoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Delete all invoices",
	Long: `Delete all invoices. The invoice number sequence is kept, so future
invoices never reuse a number.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will delete ALL invoices. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		for _, inv := range appInstance.Invoices.List() {
			appInstance.Invoices.Delete(inv.ID)
		}

		fmt.Println("All invoices have been deleted.")
		return nil
	},
}

var resetAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Delete all projects, tasks, entries, invoices, and timer state",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will wipe ALL zentime data. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		appInstance.Entries.StopTimer()
		for _, e := range appInstance.Entries.List() {
			appInstance.Entries.Delete(e.ID)
		}
		for _, inv := range appInstance.Invoices.List() {
			appInstance.Invoices.Delete(inv.ID)
		}
		for _, t := range appInstance.Tasks.List() {
			appInstance.Tasks.Delete(t.ID)
		}
		for _, p := range appInstance.Projects.List() {
			appInstance.Projects.Delete(p.ID)
		}

		fmt.Println("All data has been deleted.")
		return nil
	},
}

// confirmPrompt asks for a yes/no confirmation on stdin
func confirmPrompt(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	resetCmd.AddCommand(resetEntriesCmd)
	resetCmd.AddCommand(resetInvoicesCmd)
	resetCmd.AddCommand(resetAllCmd)
}
