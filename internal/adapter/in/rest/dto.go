package rest

import (
	"docadmin/internal/model"
	"docadmin/pkg/pagination"
)

// Timestamps travel as unix seconds.

type documentJSON struct {
	ID         string `json:"id"`
	Key        string `json:"key"`
	Snapshot   string `json:"snapshot"`
	CreatedAt  int64  `json:"createdAt"`
	AccessedAt int64  `json:"accessedAt"`
	UpdatedAt  int64  `json:"updatedAt"`
}

type documentPageJSON struct {
	Documents   []documentJSON `json:"documents"`
	HasPrevious bool           `json:"hasPrevious"`
	HasNext     bool           `json:"hasNext"`
}

type projectJSON struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	AuthWebhookURL     string   `json:"authWebhookUrl"`
	AuthWebhookMethods []string `json:"authWebhookMethods"`
	PublicKey          string   `json:"publicKey"`
	SecretKey          string   `json:"secretKey"`
	CreatedAt          int64    `json:"createdAt"`
}

type projectListJSON struct {
	Projects []projectJSON `json:"projects"`
}

type createProjectJSON struct {
	Name string `json:"name"`
}

type updateProjectJSON struct {
	Name               *string   `json:"name"`
	AuthWebhookURL     *string   `json:"authWebhookUrl"`
	AuthWebhookMethods *[]string `json:"authWebhookMethods"`
}

func (u updateProjectJSON) toModel() model.UpdatableProjectFields {
	return model.UpdatableProjectFields{
		Name:               u.Name,
		AuthWebhookURL:     u.AuthWebhookURL,
		AuthWebhookMethods: u.AuthWebhookMethods,
	}
}

type createDocumentJSON struct {
	Key      string `json:"key"`
	Snapshot string `json:"snapshot"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func toDocumentJSON(d model.DocumentSummary) documentJSON {
	return documentJSON{
		ID:         d.ID,
		Key:        d.Key,
		Snapshot:   d.Snapshot,
		CreatedAt:  d.CreatedAt.Unix(),
		AccessedAt: d.AccessedAt.Unix(),
		UpdatedAt:  d.UpdatedAt.Unix(),
	}
}

func toDocumentPageJSON(p pagination.Page[model.DocumentSummary]) documentPageJSON {
	out := documentPageJSON{
		Documents:   make([]documentJSON, 0, len(p.Items)),
		HasPrevious: p.HasPrevious,
		HasNext:     p.HasNext,
	}
	for _, d := range p.Items {
		out.Documents = append(out.Documents, toDocumentJSON(d))
	}
	return out
}

func toProjectJSON(p model.Project) projectJSON {
	methods := p.AuthWebhookMethods
	if methods == nil {
		methods = []string{}
	}
	return projectJSON{
		ID:                 p.ID,
		Name:               p.Name,
		AuthWebhookURL:     p.AuthWebhookURL,
		AuthWebhookMethods: methods,
		PublicKey:          p.PublicKey,
		SecretKey:          p.SecretKey,
		CreatedAt:          p.CreatedAt.Unix(),
	}
}
