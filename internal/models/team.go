package models

// TeamMember is one static biography card on the Team page.
type TeamMember struct {
	Name          string `json:"name"`
	Institution   string `json:"institution"`
	Location      string `json:"location"`
	Email         string `json:"email"`
	Expertise     string `json:"expertise"`
	Contributions string `json:"contributions"`
	LinkedIn      string `json:"linkedin,omitempty"`
	ORCID         string `json:"orcid,omitempty"`
	Photo         string `json:"photo,omitempty"`
}
