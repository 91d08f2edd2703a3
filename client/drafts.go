package client

import (
	"context"
	"net/http"

	"anndann/models"
	"anndann/services/draft"
)

// Drafts returns a draft.Store backed by the API's session drafts. The key
// passed to each call is sent as the session header.
func (c *Client) Drafts() draft.Store {
	return &remoteDrafts{c: c}
}

type remoteDrafts struct {
	c *Client
}

type draftBody struct {
	Draft models.VolunteerDraft `json:"draft"`
}

func sessionHeader(key string) http.Header {
	h := http.Header{}
	h.Set(draft.SessionHeader, key)
	return h
}

func (r *remoteDrafts) Get(ctx context.Context, key string) (models.VolunteerDraft, error) {
	if key == "" {
		return models.VolunteerDraft{}, draft.ErrNoSession
	}
	var out draftBody
	if err := r.c.do(ctx, http.MethodGet, "/api/volunteers/draft", sessionHeader(key), nil, &out); err != nil {
		return models.VolunteerDraft{}, err
	}
	return out.Draft, nil
}

func (r *remoteDrafts) Merge(ctx context.Context, key string, partial models.VolunteerDraft) (models.VolunteerDraft, error) {
	if key == "" {
		return models.VolunteerDraft{}, draft.ErrNoSession
	}
	var out draftBody
	if err := r.c.do(ctx, http.MethodPatch, "/api/volunteers/draft", sessionHeader(key), partial, &out); err != nil {
		return models.VolunteerDraft{}, err
	}
	return out.Draft, nil
}

func (r *remoteDrafts) Clear(ctx context.Context, key string) error {
	if key == "" {
		return draft.ErrNoSession
	}
	return r.c.do(ctx, http.MethodDelete, "/api/volunteers/draft", sessionHeader(key), nil, nil)
}
