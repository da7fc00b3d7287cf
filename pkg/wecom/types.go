package wecom

import "errors"

// ErrNotObject is returned when the webhook reply is not a JSON object.
var ErrNotObject = errors.New("response is not a JSON object")

// APIResponse is the envelope every group-bot webhook call answers with.
type APIResponse struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`

	// MissingErrCode marks a JSON object reply that carried no errcode.
	MissingErrCode bool `json:"-"`
}

// OK reports whether the webhook accepted the message.
func (r APIResponse) OK() bool {
	return !r.MissingErrCode && r.ErrCode == 0
}
