package subm

// Language is one of the programming languages accepted for review.
type Language struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

var languages = []Language{
	{ID: "py", DisplayName: "Python"},
	{ID: "cpp", DisplayName: "C++"},
}

func Languages() []Language {
	return languages
}

func validLanguage(id string) bool {
	for _, l := range languages {
		if l.ID == id {
			return true
		}
	}
	return false
}

// LanguageDisplayName returns the human readable name, or the raw id
// for an unknown language.
func LanguageDisplayName(id string) string {
	for _, l := range languages {
		if l.ID == id {
			return l.DisplayName
		}
	}
	return id
}
