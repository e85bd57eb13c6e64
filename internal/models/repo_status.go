package models

// RepoStatus represents the state of the repository owning the working directory.
// A nil *RepoStatus means the directory is not inside a repository.
type RepoStatus struct {
	BranchName string // Head name with any refs/heads/ prefix stripped
	IsRemote   bool   // True if HEAD resolves to a remote-tracking ref
	IsDirty    bool   // True if the working tree has pending changes
}
