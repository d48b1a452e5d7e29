package validate

import "fmt"

// Record locates one validation error in the document
type Record struct {
	Section string
	Entry   string
	Message string
}

func (r Record) String() string {
	if r.Entry == "" {
		return fmt.Sprintf("[%s] %s", r.Section, r.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", r.Section, r.Entry, r.Message)
}

// Report accumulates validation findings across all sections without
// ever aborting the pass. Undefined sections are notices, not errors.
type Report struct {
	Records   []Record
	Undefined []string
}

// Add records a validation error for the given section and entry
func (r *Report) Add(section, entry, format string, args ...interface{}) {
	r.Records = append(r.Records, Record{
		Section: section,
		Entry:   entry,
		Message: fmt.Sprintf(format, args...),
	})
}

// AddUndefined records a section that was entirely absent from the document
func (r *Report) AddUndefined(section string) {
	r.Undefined = append(r.Undefined, section)
}

// Failed reports whether any validation error was recorded. Undefined
// sections alone never fail a report.
func (r *Report) Failed() bool {
	return len(r.Records) > 0
}
