package selfhosted

type Message struct {
	Message string `json:"message"`
}

type CredentialsOptions struct {
	Comment string   `json:"comment,omitempty"`
	Scopes  []string `json:"scopes,omitempty"`
	// Provider selects the distribution registry, e.g. "quay".
	Provider string `json:"provider,omitempty"`
}

type Credential struct {
	MemberID string `json:"member_id,omitempty"`
	Email    string `json:"email,omitempty"`
}

type DistributionCredentials struct {
	DistributionCredentialsID string   `json:"distribution_credentials_id"`
	Provider                  string   `json:"provider,omitempty"`
	Comment                   string   `json:"comment,omitempty"`
	Scopes                    []string `json:"scopes,omitempty"`
	Created                   string   `json:"created,omitempty"`
	// Secret is returned only on creation.
	Secret string `json:"secret,omitempty"`
}

type Credentials struct {
	Member                  Credential              `json:"member,omitempty"`
	DistributionCredentials DistributionCredentials `json:"distribution_credentials"`
}

type CredentialsResponse struct {
	DistributionCredentials []Credentials `json:"distribution_credentials"`
}
