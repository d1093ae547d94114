package country

import "sort"

// Visa category identifiers are an open string domain: admins may enter
// custom labels and they flow through selection and resolution unchanged.
// These are the curated defaults the admin form offers.
const (
	CategoryShortTerm  = "Short Term Visa"
	CategoryLongTerm   = "Long Term Visa"
	CategoryWorkPermit = "Work Permit"
	CategoryStudent    = "Student Visa"
	CategoryJournalist = "Journalist / Media"
)

// DefaultCategories lists the curated category labels in display order.
func DefaultCategories() []string {
	return []string{
		CategoryShortTerm,
		CategoryLongTerm,
		CategoryWorkPermit,
		CategoryStudent,
		CategoryJournalist,
	}
}

func sortedKeys(m map[string]VisaCategoryDetails) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
