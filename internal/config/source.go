package config

// AutoSentinel is the lang_char value that requests a derived vocabulary
const AutoSentinel = "None"

// VocabularySource says where the model's character set comes from.
// It is either Auto or Explicit.
type VocabularySource interface {
	vocabularySource()
}

// Auto derives the character set from the selected datasets' label files
type Auto struct{}

// Explicit uses the configured character groups verbatim
type Explicit struct {
	Number   string
	Symbol   string
	LangChar string
}

func (Auto) vocabularySource() {}
func (Explicit) vocabularySource() {}

// Characters concatenates number, symbol and lang_char without dedup or sorting
func (e Explicit) Characters() string {
	return e.Number + e.Symbol + e.LangChar
}
