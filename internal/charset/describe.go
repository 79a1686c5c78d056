package charset

var controlDescriptions = [32]string{
	"Null", "Start of Heading", "Start of Text", "End of Text",
	"End of Transmission", "Enquiry", "Acknowledge", "Bell",
	"Backspace", "Horizontal Tab", "Line Feed", "Vertical Tab",
	"Form Feed", "Carriage Return", "Shift Out", "Shift In",
	"Data Link Escape", "Device Control 1", "Device Control 2", "Device Control 3",
	"Device Control 4", "Negative Acknowledge", "Synchronous Idle", "End of Transmission Block",
	"Cancel", "End of Medium", "Substitute", "Escape",
	"File Separator", "Group Separator", "Record Separator", "Unit Separator",
}

// Describe returns a human readable name for cp.
func Describe(cp int) string {
	switch {
	case cp >= 0 && cp < len(controlDescriptions):
		return controlDescriptions[cp]
	case cp == Del:
		return "Delete"
	case cp == ' ':
		return "Space"
	}
	return Kind(cp)
}

// Kind classifies cp for display.
func Kind(cp int) string {
	switch {
	case IsControl(cp):
		return "Control"
	case cp == ' ':
		return "Space"
	case cp >= '0' && cp <= '9':
		return "Digit"
	case cp >= 'A' && cp <= 'Z':
		return "Uppercase letter"
	case cp >= 'a' && cp <= 'z':
		return "Lowercase letter"
	case cp > ' ' && cp < Del:
		return "Punctuation"
	}
	return ""
}
