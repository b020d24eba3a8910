package command

import "strings"

// ParseResult holds the parsed command name and arguments from a text line.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Args are the remaining words after the command.
	Args []string
	// Raw is the whole trimmed line, case preserved.
	Raw string
}

// Parse splits a text line into a command and arguments.
//
// Postcondition: Returns a ParseResult. If line is blank, Command is empty.
func Parse(line string) ParseResult {
	line = strings.TrimSpace(line)
	if line == "" {
		return ParseResult{}
	}

	fields := strings.Fields(line)
	result := ParseResult{
		Command: strings.ToLower(fields[0]),
		Raw:     line,
	}
	if len(fields) > 1 {
		result.Args = fields[1:]
	}
	return result
}
