package manage

import (
	"net/url"
	"strconv"
)

type ProjectUpdateOptions struct {
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
}

type KeyOptions struct {
	Comment        string   `json:"comment"`
	Scopes         []string `json:"scopes"`
	ExpirationDate string   `json:"expiration_date,omitempty"`
	TimeToLiveSecs int      `json:"time_to_live_in_seconds,omitempty"`
}

type ScopeOptions struct {
	Scope string `json:"scope"`
}

type InviteOptions struct {
	Email string `json:"email"`
	Scope string `json:"scope"`
}

type UsageRequestOptions struct {
	Start  string
	End    string
	Page   int
	Limit  int
	Status string
}

func (o UsageRequestOptions) queryValues() url.Values {
	q := url.Values{}
	if o.Start != "" {
		q.Set("start", o.Start)
	}
	if o.End != "" {
		q.Set("end", o.End)
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	return q
}

type UsageSummaryOptions struct {
	Start    string
	End      string
	Model    string
	Method   string
	Tag      string
	Accuracy string
}

func (o UsageSummaryOptions) queryValues() url.Values {
	q := url.Values{}
	if o.Start != "" {
		q.Set("start", o.Start)
	}
	if o.End != "" {
		q.Set("end", o.End)
	}
	if o.Model != "" {
		q.Set("model", o.Model)
	}
	if o.Method != "" {
		q.Set("method", o.Method)
	}
	if o.Tag != "" {
		q.Set("tag", o.Tag)
	}
	if o.Accuracy != "" {
		q.Set("accuracy", o.Accuracy)
	}
	return q
}

type UsageFieldsOptions struct {
	Start string
	End   string
}

func (o UsageFieldsOptions) queryValues() url.Values {
	q := url.Values{}
	if o.Start != "" {
		q.Set("start", o.Start)
	}
	if o.End != "" {
		q.Set("end", o.End)
	}
	return q
}
