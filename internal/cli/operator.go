package cli

import (
	"os"
	"os/user"
)

// CurrentOperator returns the name recorded as operator of a generation.
// RESMAKER_OPERATOR overrides the login name.
func CurrentOperator() string {
	if name := os.Getenv("RESMAKER_OPERATOR"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
