package domain

import "errors"

var (
	ErrFloatingRev         = errors.New("revision is not pinned")
	ErrHookNotFound        = errors.New("hook not found")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrInvalidManifest     = errors.New("invalid hooks manifest")
	ErrNoConfig            = errors.New("configuration file not found")
	ErrRepoFetch           = errors.New("failed to fetch repository")
	ErrRepoNotCached       = errors.New("repository not cached")
	ErrUnsupportedLanguage = errors.New("unsupported hook language")
)
