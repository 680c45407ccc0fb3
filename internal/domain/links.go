package domain

// LinkRecord is one extracted or merged hyperlink. Row refers to the source
// row for extraction and the destination row for merging; downstream
// consumers rely on that asymmetry.
type LinkRecord struct {
	Row   int    `json:"row"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ExtractionResult is the outcome of one extract call. Exactly one of
// OutputFile and ErrorMessage is set on completion.
type ExtractionResult struct {
	OperationID  string       `json:"operationId"`
	TotalRows    int          `json:"totalRows"`
	LinksFound   int          `json:"linksFound"`
	Links        []LinkRecord `json:"links"`
	OutputFile   []byte       `json:"-"`
	ErrorMessage string       `json:"errorMessage,omitempty"`
}

// MergeResult is the outcome of one merge call.
type MergeResult struct {
	OperationID  string       `json:"operationId"`
	TotalRows    int          `json:"totalRows"`
	LinksCreated int          `json:"linksCreated"`
	Links        []LinkRecord `json:"links"`
	OutputFile   []byte       `json:"-"`
	ErrorMessage string       `json:"errorMessage,omitempty"`
}

// ProcessingOptions bound a single extract or merge call. They are supplied
// by the caller and immutable for the duration of the call.
type ProcessingOptions struct {
	MaxFileSizeBytes    int64
	MaxHeaderSearchRows int
	MaxURLLength        int
}

const (
	DefaultMaxFileSizeMB       = 10
	DefaultMaxHeaderSearchRows = 10
	DefaultMaxURLLength        = 2000

	// MaxURLLengthCeiling is the hard upper bound on MaxURLLength, enforced
	// when configuration is loaded.
	MaxURLLengthCeiling = 10000
)

// DefaultOptions returns the processing limits used when the caller
// supplies none.
func DefaultOptions() ProcessingOptions {
	return ProcessingOptions{
		MaxFileSizeBytes:    DefaultMaxFileSizeMB * 1024 * 1024,
		MaxHeaderSearchRows: DefaultMaxHeaderSearchRows,
		MaxURLLength:        DefaultMaxURLLength,
	}
}
