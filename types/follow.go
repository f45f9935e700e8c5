package types

type ToggleFollowResponse struct {
	Following bool `json:"following"`
}
