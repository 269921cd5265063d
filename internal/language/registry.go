package language

import "strings"

// Language describes one entry in the supported-language registry.
type Language struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Extension     string `json:"extension"`
	CommentPrefix string `json:"-"`
}

var registry = []Language{
	{ID: "javascript", Label: "JavaScript", Extension: ".js", CommentPrefix: "//"},
	{ID: "typescript", Label: "TypeScript", Extension: ".ts", CommentPrefix: "//"},
	{ID: "python", Label: "Python", Extension: ".py", CommentPrefix: "#"},
	{ID: "java", Label: "Java", Extension: ".java", CommentPrefix: "//"},
	{ID: "go", Label: "Go", Extension: ".go", CommentPrefix: "//"},
	{ID: "rust", Label: "Rust", Extension: ".rs", CommentPrefix: "//"},
	{ID: "c", Label: "C", Extension: ".c", CommentPrefix: "//"},
	{ID: "cpp", Label: "C++", Extension: ".cpp", CommentPrefix: "//"},
	{ID: "csharp", Label: "C#", Extension: ".cs", CommentPrefix: "//"},
	{ID: "php", Label: "PHP", Extension: ".php", CommentPrefix: "//"},
	{ID: "ruby", Label: "Ruby", Extension: ".rb", CommentPrefix: "#"},
	{ID: "swift", Label: "Swift", Extension: ".swift", CommentPrefix: "//"},
	{ID: "kotlin", Label: "Kotlin", Extension: ".kt", CommentPrefix: "//"},
	{ID: "sql", Label: "SQL", Extension: ".sql", CommentPrefix: "--"},
	{ID: "shell", Label: "Shell", Extension: ".sh", CommentPrefix: "#"},
}

// Supported returns every registered language in display order.
func Supported() []Language {
	out := make([]Language, len(registry))
	copy(out, registry)
	return out
}

// Lookup resolves a language identifier case-insensitively.
func Lookup(id string) (Language, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, lang := range registry {
		if lang.ID == id {
			return lang, true
		}
	}
	return Language{}, false
}
