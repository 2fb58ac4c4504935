package entity

// ProfileKind tags which of the two disjoint profile variants a resolved
// profile carries.
type ProfileKind string

const (
	// ProfileKindClient indicates the profile is a Client.
	ProfileKindClient ProfileKind = "client"
	// ProfileKindWorker indicates the profile is a Worker.
	ProfileKindWorker ProfileKind = "worker"
)

// String returns the kind as its wire form.
func (k ProfileKind) String() string {
	return string(k)
}

// Profile is the tagged union returned by identity resolution. Exactly one
// of Client/Worker is non-nil, matching Kind, so callers pattern-match on
// the tag instead of duck-typing on which fields happen to be present.
type Profile struct {
	Kind   ProfileKind `json:"kind"`
	Client *Client     `json:"client,omitempty"`
	Worker *Worker     `json:"worker,omitempty"`
}

// ClientProfile wraps a Client in its tagged form.
func ClientProfile(c *Client) *Profile {
	return &Profile{Kind: ProfileKindClient, Client: c}
}

// WorkerProfile wraps a Worker in its tagged form.
func WorkerProfile(w *Worker) *Profile {
	return &Profile{Kind: ProfileKindWorker, Worker: w}
}

// IdentityUID returns the identity provider uid of whichever variant is set.
func (p *Profile) IdentityUID() string {
	switch p.Kind {
	case ProfileKindClient:
		return p.Client.IdentityUID
	case ProfileKindWorker:
		return p.Worker.IdentityUID
	default:
		return ""
	}
}
