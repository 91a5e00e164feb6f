package iostreams

import "fmt"

func (s *IOStreams) printWithIcon(icon, format string, args []any) error {
	_, err := fmt.Fprintf(s.ErrOut, "%s %s\n", icon, fmt.Sprintf(format, args...))
	return err
}

// PrintSuccess prints a status message to stderr with a success icon.
func (s *IOStreams) PrintSuccess(format string, args ...any) error {
	return s.printWithIcon(s.ColorScheme().SuccessIcon(), format, args)
}

// PrintWarning prints a status message to stderr with a warning icon.
func (s *IOStreams) PrintWarning(format string, args ...any) error {
	return s.printWithIcon(s.ColorScheme().WarningIcon(), format, args)
}

// PrintInfo prints a status message to stderr with an info icon.
func (s *IOStreams) PrintInfo(format string, args ...any) error {
	return s.printWithIcon(s.ColorScheme().InfoIcon(), format, args)
}

// PrintFailure prints an error message to stderr with a failure icon.
func (s *IOStreams) PrintFailure(format string, args ...any) error {
	return s.printWithIcon(s.ColorScheme().FailureIcon(), format, args)
}
