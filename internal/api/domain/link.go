package domain

// Link is a hypermedia control attached to a resource representation.
type Link struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Type   string `json:"type"`
	Action string `json:"action"`
}

// Relation types used by the API.
const (
	RelSelf     = "self"
	RelNext     = "next"
	RelPrevious = "previous"
)
