// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DeckConfig holds settings for reading the flashcard export.
type DeckConfig struct {
	// Separator re-joins restored sentences in each answer (default "\n").
	Separator string `json:"separator" yaml:"separator"`

	// Sentinel is a literal line value skipped during parsing. Anki's
	// image-occlusion exports emit "Verdeckungen ein/aus" toggle lines that
	// are not cards.
	Sentinel string `json:"sentinel" yaml:"sentinel"`

	// CommentPrefix marks header/comment lines to skip (default "#").
	CommentPrefix string `json:"comment_prefix" yaml:"comment_prefix"`
}

// WorkbookConfig holds settings for the xlsx output.
type WorkbookConfig struct {
	// CardsSheet is the name of the sheet holding accepted cards.
	CardsSheet string `json:"cards_sheet" yaml:"cards_sheet"`

	// ErrorsSheet is the name of the sheet holding rejected entries.
	ErrorsSheet string `json:"errors_sheet" yaml:"errors_sheet"`
}

// CatalogConfig holds settings for the card catalog database.
type CatalogConfig struct {
	// Path is the SQLite database file (default "deckconvert.db").
	Path string `json:"path" yaml:"path"`
}

// Config is the full deckconvert configuration.
type Config struct {
	Deck     DeckConfig     `json:"deck" yaml:"deck"`
	Workbook WorkbookConfig `json:"workbook" yaml:"workbook"`
	Catalog  CatalogConfig  `json:"catalog" yaml:"catalog"`
}

// DefaultConfig returns the configuration matching the StudySmarter import
// format and the export quirks the tool was tuned for.
func DefaultConfig() Config {
	return Config{
		Deck: DeckConfig{
			Separator:     "\n",
			Sentinel:      "Verdeckungen ein/aus",
			CommentPrefix: "#",
		},
		Workbook: WorkbookConfig{
			CardsSheet:  "Valid Cards",
			ErrorsSheet: "errors",
		},
		Catalog: CatalogConfig{
			Path: "deckconvert.db",
		},
	}
}
