package catalog

import "strings"

// GenericAction is returned when no keyword of the category matches.
var GenericAction = Action{
	Message: "Command executed",
	Icon:    "✅",
	Color:   "#10b981",
}

// Match returns the first action, in table declaration order, whose
// keyword appears inside the lowercased command.
func Match(category Category, command string) (Action, bool) {
	command = strings.ToLower(command)

	for _, action := range category.Actions {
		if strings.Contains(command, action.Keyword) {
			return action, true
		}
	}

	return GenericAction, false
}
