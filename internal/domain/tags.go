package domain

// Tag names shared between file identification and the types filters.
const (
	TagBinary        = "binary"
	TagDirectory     = "directory"
	TagExecutable    = "executable"
	TagFile          = "file"
	TagNonExecutable = "non-executable"
	TagSymlink       = "symlink"
	TagText          = "text"
)

// typeTags are the type-level tags (kind of entry and mode)
var typeTags = []string{
	TagDirectory,
	TagFile,
	TagSymlink,
	TagExecutable,
	TagNonExecutable,
	TagBinary,
	TagText,
}

// languageTags are content tags derived from extensions, names and shebangs
var languageTags = []string{
	"bash", "batch", "c", "c++", "cfg", "css", "csv", "dockerfile", "dotenv",
	"go", "go-mod", "go-sum", "gitignore", "gitattributes", "graphql", "html",
	"ini", "java", "javascript", "jinja", "json", "jsx", "kotlin", "lua",
	"makefile", "markdown", "perl", "php", "plain-text", "proto", "pyi",
	"python", "r", "rst", "ruby", "rust", "scss", "shell", "sql", "svg",
	"swift", "terraform", "toml", "ts", "tsx", "xml", "yaml", "zsh",
	"image", "png", "jpeg", "gif", "zip", "gzip", "tar", "pdf",
}

// KnownTags returns the set of tags a types/types_or/exclude_types entry may use
func KnownTags() map[string]struct{} {
	tags := make(map[string]struct{}, len(typeTags)+len(languageTags))
	for _, t := range typeTags {
		tags[t] = struct{}{}
	}
	for _, t := range languageTags {
		tags[t] = struct{}{}
	}
	return tags
}
