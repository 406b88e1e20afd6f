package settings

// Service wraps the key-value repository with typed accessors.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}
