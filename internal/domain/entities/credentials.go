package entities

// SourceCredentials authenticates against the Bitbucket workspace.
type SourceCredentials struct {
	Workspace string
	Username  string
	AppSecret string
}

// Complete reports whether every field required to talk to Bitbucket is set.
func (c SourceCredentials) Complete() bool {
	return c.Workspace != "" && c.Username != "" && c.AppSecret != ""
}

// DestinationCredentials authenticates against the Azure DevOps organization.
type DestinationCredentials struct {
	OrgURL      string
	Project     string
	AccessToken string
}

// Complete reports whether every field required to talk to Azure DevOps is set.
func (c DestinationCredentials) Complete() bool {
	return c.OrgURL != "" && c.Project != "" && c.AccessToken != ""
}

// Credentials holds both platform credentials for one command invocation.
// Secrets live in process memory only and are never persisted or logged.
type Credentials struct {
	Source      SourceCredentials
	Destination DestinationCredentials
}
