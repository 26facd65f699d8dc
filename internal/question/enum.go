package question

type QuestionType string

const (
	SINGLE_CHOICE   QuestionType = "single_choice"
	MULTIPLE_CHOICE QuestionType = "multiple_choice"
	TEXT            QuestionType = "text"
)

var AllTypes = []QuestionType{
	SINGLE_CHOICE,
	MULTIPLE_CHOICE,
	TEXT,
}

func (t QuestionType) IsValid() bool {
	for _, v := range AllTypes {
		if t == v {
			return true
		}
	}
	return false
}

// RequiresOption reports whether an answer must pick an option rather than
// carry free text.
func (t QuestionType) RequiresOption() bool {
	return t != TEXT
}
