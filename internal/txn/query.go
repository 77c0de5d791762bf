package txn

import "strings"

// Filter returns the records matching the search term and status filter,
// preserving input order.
//
// A record matches the term when the term is a case-insensitive substring
// of its id, name, email, phone or purpose. An empty term matches every
// record. The status filter is either StatusAll or one exact status value
// and is ANDed with the text match.
func Filter(records []Record, term string, status string) []Record {
	term = strings.ToLower(strings.TrimSpace(term))

	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if !matchesTerm(r, term) {
			continue
		}
		if status != StatusAll && string(r.Status) != status {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func matchesTerm(r Record, term string) bool {
	if term == "" {
		return true
	}
	for _, field := range []string{r.ID, r.Name, r.Email, r.Phone, r.Purpose} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// FindByID returns the record with the given id, if present
func FindByID(records []Record, id string) (Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}
