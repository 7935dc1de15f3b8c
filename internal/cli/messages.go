package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/drawerfinder/internal/common"
)

// userMessage turns a service error into the text shown at the prompt.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrUserNotFound):
		return "User not found."
	case errors.Is(err, common.ErrIncorrectPassword):
		return "Incorrect password."
	case errors.Is(err, common.ErrDuplicateUser):
		return "Username already exists."
	case errors.Is(err, common.ErrIndexOutOfRange):
		return "No item at that position."
	case errors.Is(err, common.ErrUnauthorized):
		return "Please log in first (type 'login')."
	case errors.Is(err, common.ErrForbidden):
		return "Only administrators can do that."
	case errors.Is(err, common.ErrInvalidDrawer):
		return fmt.Sprintf("Drawer must be between %d and %d.", common.DrawerMin, common.DrawerMax)
	case errors.Is(err, common.ErrInvalidRole):
		return "Role must be 'user' or 'admin'."
	case errors.Is(err, common.ErrMissingRequiredField):
		field := missingField(err)
		if field == "" {
			return "Please fill in all required fields."
		}
		return fmt.Sprintf("Please enter the %s.", field)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// missingField extracts the field name from an error wrapped as
// "%w: <field>" around common.ErrMissingRequiredField.
func missingField(err error) string {
	prefix := common.ErrMissingRequiredField.Error() + ": "
	msg := err.Error()
	i := strings.Index(msg, prefix)
	if i < 0 {
		return ""
	}
	return msg[i+len(prefix):]
}

// fail prints err for the user and returns it unchanged.
func (a *App) fail(err error) error {
	fmt.Fprintln(a.out, userMessage(err))
	return err
}
