package domain

type Section string

const (
	SectionForm      Section = "form"
	SectionActive    Section = "active"
	SectionCompleted Section = "completed"
)

func ParseSection(s string) (Section, bool) {
	switch Section(s) {
	case SectionForm, SectionActive, SectionCompleted:
		return Section(s), true
	default:
		return "", false
	}
}

// Sections holds the open/closed flag of each page section.
type Sections struct {
	Form      bool
	Active    bool
	Completed bool
}

// DefaultSections starts with the entry form closed and both lists open.
func DefaultSections() Sections {
	return Sections{Form: false, Active: true, Completed: true}
}

func (s Sections) Toggle(section Section) Sections {
	switch section {
	case SectionForm:
		s.Form = !s.Form
	case SectionActive:
		s.Active = !s.Active
	case SectionCompleted:
		s.Completed = !s.Completed
	}
	return s
}

func (s Sections) IsOpen(section Section) bool {
	switch section {
	case SectionForm:
		return s.Form
	case SectionActive:
		return s.Active
	case SectionCompleted:
		return s.Completed
	default:
		return false
	}
}
