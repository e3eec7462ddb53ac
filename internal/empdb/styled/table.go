package styled

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nsqlite/empdb/internal/employee"
)

// NewTableWriter returns a new table.Writer with the custom
// styles for the empdb CLI.
func NewTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault
	tw.Style().Color.Header = text.Colors{text.FgCyan, text.Bold}
	tw.Style().Color.Footer = text.Colors{text.FgCyan, text.Bold}

	return tw
}

// EmployeesTable renders employees as a table with a total in the footer.
func EmployeesTable(employees []employee.Employee) string {
	tw := NewTableWriter()
	tw.AppendHeader(table.Row{"Full name", "Birth date", "Gender", "Age"})
	for _, e := range employees {
		tw.AppendRow(table.Row{e.FullName, e.BirthDate, e.Gender, e.Age})
	}
	tw.AppendFooter(table.Row{"Total", "", "", len(employees)})

	return tw.Render()
}
