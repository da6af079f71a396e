package entities

// Repository describes one repository as listed by the source workspace.
// Instances are produced by the listing fetch and consumed read-only by the
// migration, validation and analysis workflows.
type Repository struct {
	Slug       string // unique short identifier within the workspace
	Name       string
	ProjectKey string
}

// Project describes one project container in the source workspace.
type Project struct {
	Key  string
	Name string
}
