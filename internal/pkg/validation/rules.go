package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern - applied by the persistence layer on user creation
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Password length bounds, both inclusive
	PasswordMinLength = 8
	PasswordMaxLength = 20
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// ValidateNewUser checks a user-creation payload and returns the ordered list
// of violation messages. Every rule is checked independently so that all
// simultaneous violations are reported together. An empty list means valid.
func ValidateNewUser(firstName, lastName, email, password string) []string {
	var errors []string

	if firstName == "" {
		errors = append(errors, "Please provide the user's firstName.")
	}

	if lastName == "" {
		errors = append(errors, "Please provide the user's lastName.")
	}

	if email == "" {
		errors = append(errors, "Please provide the emailAddress of the user.")
	}

	if password == "" {
		errors = append(errors, "Please provide a value for password.")
	} else if len(password) < PasswordMinLength || len(password) > PasswordMaxLength {
		errors = append(errors, "Your password should be between 8 and 20 characters.")
	}

	return errors
}

// ValidateNewCourse checks a course-creation payload and returns the ordered
// list of violation messages. estimatedTime and materialsNeeded are free-form
// optional fields and are not checked.
func ValidateNewCourse(title, description string) []string {
	var errors []string

	if title == "" {
		errors = append(errors, "Please enter a title for the course.")
	}

	if description == "" {
		errors = append(errors, "Please enter a description for the course.")
	}

	return errors
}
