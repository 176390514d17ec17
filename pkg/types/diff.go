package types

import "fmt"

// RawDiff is an unclassified difference between a listing and the file
// system. An empty From means creation, an empty To means deletion. When both
// are set, the entity at From is now expected at To.
type RawDiff struct {
	From string `json:"from,omitempty" yaml:"from,omitempty"`
	To   string `json:"to,omitempty" yaml:"to,omitempty"`

	// Dir is the directory whose listing produced the difference
	Dir string `json:"dir" yaml:"dir"`
}

// IsCreate reports whether the difference describes a new entry
func (d RawDiff) IsCreate() bool {
	return d.From == "" && d.To != ""
}

// IsDelete reports whether the difference describes a removed entry
func (d RawDiff) IsDelete() bool {
	return d.From != "" && d.To == ""
}

func (d RawDiff) String() string {
	from, to := d.From, d.To
	if from == "" {
		from = "<nil>"
	}
	if to == "" {
		to = "<nil>"
	}
	return fmt.Sprintf("%s -> %s (in %s)", from, to, d.Dir)
}
