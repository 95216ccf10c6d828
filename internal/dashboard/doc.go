// Package dashboard renders the AuraLearn reading page for a terminal.
//
// Every optional element is looked up in stress.VisibleAffordances, so the
// page shrinks to the reading pane and chat input when the tier is high.
package dashboard
