package ports

import "github.com/renato0307/hookpin/internal/domain"

// ConfigReader reads hook configuration documents
type ConfigReader interface {
	Load(path string) (*domain.Config, error)
	Parse(data []byte) (*domain.Config, error)
}

// ConfigWriter serializes and edits hook configuration documents
type ConfigWriter interface {
	Marshal(cfg *domain.Config) ([]byte, error)
	UpdateRevs(data []byte, updates []domain.RevUpdate) ([]byte, error)
}

// ManifestReader reads the hooks a repository exports
type ManifestReader interface {
	LoadManifest(repoPath string) ([]domain.HookDefinition, error)
}

// ConfigLoader is the composite interface
type ConfigLoader interface {
	ConfigReader
	ConfigWriter
	ManifestReader
}
