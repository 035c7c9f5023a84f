package domain

// LocalizedText holds the language variants of a label. Original is always
// set; an empty English or German value means no translation is available.
type LocalizedText struct {
	Original string `json:"original"`
	English  string `json:"english,omitempty"`
	German   string `json:"german,omitempty"`
}

// Text returns a LocalizedText with only the original variant.
func Text(original string) LocalizedText { return LocalizedText{Original: original} }
