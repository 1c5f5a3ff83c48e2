package manage

// Message is the generic acknowledgement many mutating endpoints return.
type Message struct {
	Message string `json:"message"`
}

type Project struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Company   string `json:"company,omitempty"`
}

type ProjectsResponse struct {
	Projects []Project `json:"projects"`
}

// Key is a freshly created API key; APIKey (the secret) is only ever present
// in the creation response.
type Key struct {
	APIKeyID       string   `json:"api_key_id"`
	APIKey         string   `json:"key,omitempty"`
	Comment        string   `json:"comment,omitempty"`
	Scopes         []string `json:"scopes"`
	Created        string   `json:"created,omitempty"`
	ExpirationDate string   `json:"expiration_date,omitempty"`
}

type Member struct {
	MemberID  string   `json:"member_id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Scopes    []string `json:"scopes,omitempty"`
}

// KeyDetail is the listing shape: the key plus its owning member.
type KeyDetail struct {
	APIKey Key     `json:"api_key"`
	Member *Member `json:"member,omitempty"`
}

type KeysResponse struct {
	APIKeys []KeyDetail `json:"api_keys"`
}

type MembersResponse struct {
	Members []Member `json:"members"`
}

type ScopesResponse struct {
	Scopes []string `json:"scopes"`
}

type Invite struct {
	Email string `json:"email"`
	Scope string `json:"scope"`
}

type InvitesResponse struct {
	Invites []Invite `json:"invites"`
}

type UsageRequest struct {
	RequestID string  `json:"request_id"`
	Created   string  `json:"created,omitempty"`
	Path      string  `json:"path,omitempty"`
	APIKeyID  string  `json:"api_key_id,omitempty"`
	Response  any     `json:"response,omitempty"`
	Callback  *string `json:"callback,omitempty"`
}

type UsageRequestsResponse struct {
	Page     int            `json:"page"`
	Limit    int            `json:"limit"`
	Requests []UsageRequest `json:"requests"`
}

type UsageSummaryResolution struct {
	Units  string `json:"units"`
	Amount int    `json:"amount"`
}

type UsageSummaryResult struct {
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Hours    float64 `json:"hours"`
	Requests int     `json:"requests"`
}

type UsageSummaryResponse struct {
	Start      string                 `json:"start"`
	End        string                 `json:"end"`
	Resolution UsageSummaryResolution `json:"resolution"`
	Results    []UsageSummaryResult   `json:"results"`
}

type UsageField struct {
	Models            []string `json:"models,omitempty"`
	Languages         []string `json:"languages,omitempty"`
	ProcessingMethods []string `json:"processing_methods,omitempty"`
	Features          []string `json:"features,omitempty"`
}

type UsageFieldsResponse = UsageField

type Balance struct {
	BalanceID       string  `json:"balance_id"`
	Amount          float64 `json:"amount"`
	Units           string  `json:"units"`
	PurchaseOrderID string  `json:"purchase_order_id,omitempty"`
}

type BalancesResponse struct {
	Balances []Balance `json:"balances"`
}
