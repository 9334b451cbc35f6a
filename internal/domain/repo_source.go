package domain

// RepoSource is a parsed hook repository location
type RepoSource struct {
	IsRemote bool
	Owner    string
	Path     string // URL or local path
	Repo     string
}

// Slug returns owner/repo, or the raw path when it could not be parsed
func (r *RepoSource) Slug() string {
	if r.Owner == "" || r.Repo == "" {
		return r.Path
	}
	return r.Owner + "/" + r.Repo
}
