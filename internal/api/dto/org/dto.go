package org

type CreateRequest struct {
	Name     string `json:"name"`
	State    string `json:"state"`
	District string `json:"district"`
}

type SwitchRequest struct {
	OrgID string `json:"org_id"`
}

type OrgResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	State    string `json:"state"`
	District string `json:"district"`
}

type CreateResponse struct {
	Organization OrgResponse `json:"organization"`
	AccessToken  string      `json:"access_token"` // Carries the new org claim
}

type SwitchResponse struct {
	AccessToken string `json:"access_token"`
}
