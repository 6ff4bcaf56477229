package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affected string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns suggestions for the category. affected is a path, or the
// offending glob for CategoryPattern.
func (g *suggestionGenerator) Generate(category ErrorCategory, affected string) []string {
	switch category {
	case CategoryPattern:
		return g.generatePatternSuggestions(affected)
	case CategoryPermission:
		return g.generatePermissionSuggestions(affected)
	case CategoryPath:
		return g.generatePathSuggestions(affected)
	case CategoryRemote:
		return g.generateRemoteSuggestions(affected)
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affected)
	default:
		return g.generateUnknownSuggestions(affected)
	}
}

func (g *suggestionGenerator) generatePathSuggestions(path string) []string {
	suggestions := []string{
		"Verify the path exists and is spelled correctly",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the path exists: "+path)
	}

	return append(suggestions, "Relative patterns and --root are resolved against the current directory")
}

func (g *suggestionGenerator) generatePatternSuggestions(pattern string) []string {
	suggestions := []string{}

	if pattern != "" {
		suggestions = append(suggestions, fmt.Sprintf("Fix the glob %q", pattern))
	}

	return append(suggestions,
		"Close every '[' with ']' and every '{' with '}'",
		"Escape literal metacharacters with a backslash, e.g. '\\['",
		"Quote patterns on the command line so the shell does not expand them",
	)
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Ensure you have read and execute permission on the directories being listed",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -ld %s'", path))
	}

	return append(suggestions, "Exclude the directory with --exclude if it does not need listing")
}

func (g *suggestionGenerator) generateRemoteSuggestions(_ string) []string {
	return []string{
		"Use the form sftp://user@host[:port]/path (a double slash after the host means an absolute path)",
		"Make sure an SSH agent is running or an unencrypted key exists in ~/.ssh",
		"Add the host to ~/.ssh/known_hosts, e.g. by connecting once with ssh",
	}
}

func (g *suggestionGenerator) generateUnknownSuggestions(path string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Run again with --log-level debug to see the walk decisions",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is accessible: "+path)
	}

	return suggestions
}
