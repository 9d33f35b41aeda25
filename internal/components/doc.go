// Package components renders dashboard widgets for terminal previews.
//
// Buttons are described by the ButtonVariants table: ButtonClasses resolves
// a ButtonProps value into the same utility class string a web build would
// emit, and Button.View approximates those classes with lipgloss:
//
//	props := components.ButtonProps{Type: components.ButtonTypeOutline, Color: components.ButtonColorDanger}
//	classes := components.ButtonClasses(props)
//	out := components.NewButton("Delete", props).View()
//
// The remaining widgets (StatCard, DataTable, NavBar, BarChart) take
// generated records from the fakedata package and draw them against a Theme.
package components
