package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/qffnr/pkg/text"
)

func ExampleReplace() {
	for _, scope := range []text.Scope{text.ScopeAll, text.ScopeFirst, text.ScopeLast} {
		out, n := text.Replace("2-0 and 2-0", "2-0", "1-1", scope)
		fmt.Printf("%-5s %q (%d)\n", scope, out, n)
	}

	// Output:
	// all   "1-1 and 1-1" (2)
	// first "1-1 and 2-0" (1)
	// last  "2-0 and 1-1" (1)
}

func ExampleSimpleTextReplacer_ReplaceText() {
	replacer := text.NewSimpleTextReplacer()

	result, err := replacer.ReplaceText(context.Background(), strings.NewReader("Hello World!"), text.ReplacementRule{
		FromText: "World",
		ToText:   "Universe",
		Scope:    text.ScopeAll,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Original: %s\n", result.OriginalContent)
	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Original: Hello World!
	// Modified: Hello Universe!
	// Changes: 1
	// Was Modified: true
}
