package catalog

// DefaultMaxDepth bounds every walk over the category hierarchy.
const DefaultMaxDepth = 32

// DefaultPlaceholderImage is attached to products that have no images.
const DefaultPlaceholderImage = "/images/placeholder.png"

var _ Store = (*Repository)(nil)

type Options struct {
	MaxDepth         int
	PlaceholderImage string
	// SnapshotReads runs the page and count queries of a listing inside one
	// read-only snapshot instead of two independent round-trips.
	SnapshotReads bool
}

// Service composes the Store queries into the catalog operations. It holds no
// mutable state and is safe for concurrent use.
type Service struct {
	store Store
	opts  Options
}

func NewService(store Store, opts Options) *Service {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.PlaceholderImage == "" {
		opts.PlaceholderImage = DefaultPlaceholderImage
	}
	return &Service{store: store, opts: opts}
}

func (s *Service) PlaceholderImage() string {
	return s.opts.PlaceholderImage
}
