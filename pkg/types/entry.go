package types

// FSType is the kind of a file system entry as shown in a listing
type FSType int

const (
	// FSFile is any non-directory entry (regular files, broken links, devices)
	FSFile FSType = iota
	// FSDirectory is a directory, or a symlink resolving to one
	FSDirectory
)

// String returns the lowercase name of the type
func (t FSType) String() string {
	switch t {
	case FSDirectory:
		return "directory"
	default:
		return "file"
	}
}

// Entry is one immediate child of a directory, tagged with its registry id
type Entry struct {
	// Path is the absolute, normalized path
	Path string `json:"path" yaml:"path"`

	// Name is the basename of Path
	Name string `json:"name" yaml:"name"`

	// Type tells files and directories apart
	Type FSType `json:"type" yaml:"type"`

	// PathID is the id assigned by the path registry
	PathID int `json:"path_id" yaml:"path_id"`
}

// IsDir reports whether the entry is a directory
func (e Entry) IsDir() bool {
	return e.Type == FSDirectory
}
