// pkg/model/cleaning.go
package model

import (
	"fmt"
	"strings"
)

// CleaningAction represents a single recorded cleaning action
type CleaningAction struct {
	Stage  string // Pipeline stage that produced the action
	Column string // Column the action applies to (empty for table-wide actions)
	Detail string // Human-readable description of what was done
}

// CleaningReport is an append-only view over the actions recorded
// during one cleaning run. Insertion order is report order.
type CleaningReport struct {
	Actions []CleaningAction
}

// Append records an action at the end of the report
func (r *CleaningReport) Append(action CleaningAction) {
	r.Actions = append(r.Actions, action)
}

// ActionsForStage returns the actions recorded by one stage, in order
func (r *CleaningReport) ActionsForStage(stage string) []CleaningAction {
	var actions []CleaningAction
	for _, a := range r.Actions {
		if a.Stage == stage {
			actions = append(actions, a)
		}
	}
	return actions
}

// String renders the report as text, grouped by stage in the order
// stages first appear. The same action sequence always produces the
// same text.
func (r *CleaningReport) String() string {
	var b strings.Builder
	b.WriteString("data cleaning report\n")
	b.WriteString("====================\n")

	var order []string
	grouped := make(map[string][]CleaningAction)
	for _, a := range r.Actions {
		if _, seen := grouped[a.Stage]; !seen {
			order = append(order, a.Stage)
		}
		grouped[a.Stage] = append(grouped[a.Stage], a)
	}

	for _, stage := range order {
		fmt.Fprintf(&b, "\n[%s]\n", stage)
		for _, a := range grouped[stage] {
			if a.Column != "" {
				fmt.Fprintf(&b, "  %s: %s\n", a.Column, a.Detail)
			} else {
				fmt.Fprintf(&b, "  %s\n", a.Detail)
			}
		}
	}

	if len(r.Actions) == 0 {
		b.WriteString("\nno actions recorded\n")
	}

	return b.String()
}
