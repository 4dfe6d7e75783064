// Package domain contains the core data structures and domain logic for the application.
package domain

// Repository is a single repository owned by the authenticated account.
// It is produced by the gateway and never mutated afterwards.
type Repository struct {
	Name         string
	Owner        string
	Fork         bool
	Topics       []string
	LanguagesURL string
}

// FullName returns "owner/name".
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// LanguageBytes maps a language name to the number of bytes GitHub detected for it
// in one repository.
type LanguageBytes map[string]int64
