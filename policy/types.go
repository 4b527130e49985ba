package policy

//go:generate go run ../internal/codegen/deepcopy

// Document is the root of the conventions document. It is treated as an
// immutable read-only input once loaded; nothing in convtools mutates it.
type Document struct {
	// Naming holds the naming conventions subtree
	Naming Naming `yaml:"naming" json:"naming"`
}

// Naming holds the three logical subtrees of the naming conventions:
// style definitions, category styles, and per-language element styles.
type Naming struct {
	// Case maps a style name to its definition
	Case map[string]CaseDef `yaml:"case,omitempty" json:"case,omitempty"`
	// Repository names the style repositories must follow
	Repository CategoryDef `yaml:"repository,omitempty" json:"repository,omitempty"`
	// Directory names the style directories must follow
	Directory CategoryDef `yaml:"directory,omitempty" json:"directory,omitempty"`
	// Language maps a language name to its per-element styles
	Language map[string]ElementStyles `yaml:"language,omitempty" json:"language,omitempty"`
}

// CaseDef defines a case style: an override validation pattern and an
// optional human-readable description.
type CaseDef struct {
	// Pattern is a regular expression the whole rendered name must match
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	// Description documents the style for humans
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// CategoryDef binds a category of name (repository, directory) to a style.
type CategoryDef struct {
	// Case is the style name that applies to this category
	Case string `yaml:"case,omitempty" json:"case,omitempty"`
}

// ElementStyles maps an element kind (function, class, file) to the style
// name that applies to it within one language.
type ElementStyles map[string]string

// CasePattern returns the override pattern the document defines for the
// given style, if any. Safe on a nil receiver.
func (d *Document) CasePattern(style string) (string, bool) {
	if d == nil {
		return "", false
	}
	def, ok := d.Naming.Case[style]
	if !ok || def.Pattern == "" {
		return "", false
	}
	return def.Pattern, true
}

// RepositoryStyle returns the style configured for repository names, if
// any. Safe on a nil receiver.
func (d *Document) RepositoryStyle() (string, bool) {
	if d == nil || d.Naming.Repository.Case == "" {
		return "", false
	}
	return d.Naming.Repository.Case, true
}

// DirectoryStyle returns the style configured for directory names, if
// any. Safe on a nil receiver.
func (d *Document) DirectoryStyle() (string, bool) {
	if d == nil || d.Naming.Directory.Case == "" {
		return "", false
	}
	return d.Naming.Directory.Case, true
}

// Language returns the per-element styles configured for a language, if
// any. Safe on a nil receiver.
func (d *Document) Language(lang string) (ElementStyles, bool) {
	if d == nil {
		return nil, false
	}
	styles, ok := d.Naming.Language[lang]
	if !ok || len(styles) == 0 {
		return nil, false
	}
	return styles, true
}

// Style returns the style configured for an element kind, if any.
func (e ElementStyles) Style(element string) (string, bool) {
	style, ok := e[element]
	if !ok || style == "" {
		return "", false
	}
	return style, true
}

// Styles returns the style names the document defines override patterns
// for. Safe on a nil receiver.
func (d *Document) Styles() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Naming.Case))
	for name := range d.Naming.Case {
		names = append(names, name)
	}
	return names
}
