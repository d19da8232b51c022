// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package render draws verification data in the terminal: request tables,
// detail boxes, and the dashboard's pending-count chart.
package render

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"craftlink/adminctl/internal/verify"
)

// RequestTable prints pending requests as a table.
func RequestTable(reqs []verify.Request) error {
	data := pterm.TableData{{"ID", "Name", "Email", "Type"}}
	for _, r := range reqs {
		data = append(data, []string{r.ID, r.FullName(), r.Email, r.Type()})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()
}

// Details prints one request's personal information and document slots.
// Absent document slots are shown explicitly so reviewers see what was never
// uploaded, as opposed to what failed to load.
func Details(r verify.Request) {
	var b strings.Builder
	fmt.Fprintf(&b, "Name:  %s\n", r.FullName())
	fmt.Fprintf(&b, "Email: %s\n", r.Email)
	fmt.Fprintf(&b, "Type:  %s\n\n", r.Type())

	b.WriteString("Documents:\n")
	for _, d := range r.Documents() {
		if d.Doc.Provided {
			fmt.Fprintf(&b, "  %-24s %s\n", d.Label+":", d.Doc.URL)
		} else {
			fmt.Fprintf(&b, "  %-24s %s\n", d.Label+":", pterm.Gray("not provided"))
		}
	}

	pterm.DefaultBox.
		WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprintf("%s Verification Request %s", r.Type(), r.ID)).
		Println(strings.TrimRight(b.String(), "\n"))
}

// DashboardChart prints the pending counts as a bar chart with a summary line.
func DashboardChart(sum verify.Summary) error {
	pterm.Println()
	pterm.Println(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("Pending verification requests"))
	pterm.Println()

	err := pterm.DefaultBarChart.
		WithHorizontal().
		WithShowValue().
		WithBars([]pterm.Bar{
			{Label: "Clients", Value: sum.PendingClients, Style: pterm.NewStyle(pterm.FgCyan)},
			{Label: "Engineers", Value: sum.PendingEngineers, Style: pterm.NewStyle(pterm.FgLightGreen)},
		}).
		Render()
	if err != nil {
		return err
	}

	pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Total pending: ") +
		pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprintf("%d", sum.Total()))
	pterm.Println()
	return nil
}

// Decision prints the submitted verdict confirmation.
func Decision(r *verify.Request) {
	if r == nil {
		return
	}
	switch r.Status {
	case verify.StatusAccepted:
		pterm.Printf("✅ %s accepted. The applicant's identity has been verified.\n", r.FullName())
	case verify.StatusRejected:
		pterm.Printf("🚫 %s rejected. The applicant will be asked to resubmit.\n", r.FullName())
	default:
		pterm.Printf("Updated %s: status %s\n", r.ID, r.Status)
	}
}
