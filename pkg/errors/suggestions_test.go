package errors_test

import (
	"strings"
	"testing"

	pkgerrors "github.com/joe/list-files/pkg/errors"
)

func TestSuggestionsForEveryCategory(t *testing.T) {
	t.Parallel()

	generator := pkgerrors.NewSuggestionGenerator()

	for _, category := range []pkgerrors.ErrorCategory{
		pkgerrors.CategoryPattern,
		pkgerrors.CategoryPath,
		pkgerrors.CategoryPermission,
		pkgerrors.CategoryRemote,
		pkgerrors.CategoryUnknown,
		pkgerrors.ErrorCategory("made-up"),
	} {
		t.Run(string(category), func(t *testing.T) {
			t.Parallel()

			if suggestions := generator.Generate(category, ""); len(suggestions) == 0 {
				t.Errorf("expected suggestions for %q", category)
			}
		})
	}
}

func TestSuggestionsMentionAffectedPath(t *testing.T) {
	t.Parallel()

	generator := pkgerrors.NewSuggestionGenerator()

	for _, category := range []pkgerrors.ErrorCategory{
		pkgerrors.CategoryPath,
		pkgerrors.CategoryPermission,
		pkgerrors.CategoryUnknown,
	} {
		joined := strings.Join(generator.Generate(category, "/var/data"), "\n")
		if !strings.Contains(joined, "/var/data") {
			t.Errorf("%s suggestions do not mention the path: %q", category, joined)
		}
	}
}
