package render

import (
	"strconv"
	"strings"
)

// Class sets toggled when the course list is synchronised in place
var (
	ActiveItemClasses = []string{"bg-blue-100", "border", "border-blue-300", "text-blue-700"}
	IdleItemClasses   = []string{"bg-white", "border", "border-gray-200", "hover:bg-gray-50", "text-gray-700"}

	ActiveTabClasses = []string{"bg-white", "text-blue-600", "border-blue-600"}
	IdleTabClasses   = []string{"text-gray-600"}
)

const (
	CompletedItemClass = "border-green-200"
	itemBase           = "course-item w-full text-left p-3 rounded-lg transition"

	BadgeBase      = "course-badge w-8 h-8 rounded-full flex items-center justify-center"
	badgeCompleted = "bg-green-500 text-white"
	badgeActive    = "bg-blue-500 text-white"
	badgeIdle      = "bg-gray-200 text-gray-600"

	tabBase = "tab-button flex-shrink-0 px-4 py-3 font-medium text-sm border-b-2 border-transparent hover:bg-white hover:text-blue-600 transition"
)

// ItemClass returns the class attribute of a course list entry
func ItemClass(active, completed bool) string {
	parts := []string{itemBase}

	if active {
		parts = append(parts, ActiveItemClasses...)
	} else {
		parts = append(parts, IdleItemClasses...)
	}

	if completed {
		parts = append(parts, CompletedItemClass)
	}

	return strings.Join(parts, " ")
}

// BadgeClass returns the class attribute of a course list entry's leading badge
func BadgeClass(active, completed bool) string {
	switch {
	case completed:
		return BadgeBase + " " + badgeCompleted
	case active:
		return BadgeBase + " " + badgeActive
	default:
		return BadgeBase + " " + badgeIdle
	}
}

// ItemMarker returns the leading badge text, a check once completed and the ordinal otherwise
func ItemMarker(index int, completed bool) string {
	if completed {
		return CheckMark
	}

	return strconv.Itoa(index + 1)
}

// TabClass returns the class attribute of a week tab
func TabClass(active bool) string {
	if active {
		return tabBase + " " + strings.Join(ActiveTabClasses, " ")
	}

	return tabBase + " " + strings.Join(IdleTabClasses, " ")
}

// WeekBadgeClass returns the class attribute of a week tab badge
func WeekBadgeClass(kind BadgeKind) string {
	if kind == BadgeCheck {
		return "week-badge text-green-500"
	}

	return "week-badge text-blue-500 text-xs"
}

// NotificationBaseClass marks every banner
const NotificationBaseClass = "notification"

// NotificationClass returns the class attribute of a banner of kind
func NotificationClass(kind string) string {
	color := "bg-blue-500"

	switch kind {
	case "success":
		color = "bg-green-500"
	case "error":
		color = "bg-red-500"
	}

	return NotificationBaseClass + " notification-" + kind + " fixed top-4 right-4 p-4 rounded-lg shadow-lg z-50 text-white " + color
}
