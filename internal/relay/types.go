package relay

// RelayInput is a raw message request as received from a front end.
type RelayInput struct {
	Kind    string
	Content any
}
