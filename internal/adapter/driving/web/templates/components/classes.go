package components

import (
	"strconv"
	"strings"

	vm "github.com/ericfisherdev/trainingpanel/internal/adapter/driving/web/viewmodel"
)

// cellClass returns the class list of a training cell. Cells without a
// treatment carry only the base class.
func cellClass(c vm.CellViewModel) string {
	classes := []string{"training-cell"}
	if c.CSSClass != "" {
		classes = append(classes, c.CSSClass)
	}
	if c.Pulse {
		classes = append(classes, "pulse")
	}
	return strings.Join(classes, " ")
}

func dueListClass(kind string) string {
	return "due-list due-" + kind
}

func upcomingTitle(days int) string {
	return "Upcoming exams (next " + strconv.Itoa(days) + " days)"
}
