// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"genzet/internal/models"
)

// wireCategory is the raw category record as the backend serves it.
type wireCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (w wireCategory) toModel() models.Category {
	return models.Category{ID: w.ID, Name: w.Name, CreatedAt: w.CreatedAt}
}

// categoryInput is the payload for category mutations.
type categoryInput struct {
	Name string `json:"name"`
}

// ListCategories fetches all categories. The endpoint requires authentication.
func (c *Client) ListCategories(ctx context.Context, token string) ([]models.Category, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/categories", token, nil, &raw); err != nil {
		return nil, err
	}

	records, err := decodeCollection[wireCategory](raw)
	if err != nil {
		return nil, &Error{Kind: KindFault, Err: err}
	}

	categories := make([]models.Category, 0, len(records))
	for _, r := range records {
		categories = append(categories, r.toModel())
	}
	return categories, nil
}

// CreateCategory adds a new category and returns the server's record.
func (c *Client) CreateCategory(ctx context.Context, token, name string) (models.Category, error) {
	var w wireCategory
	if err := c.do(ctx, http.MethodPost, "/categories", token, categoryInput{Name: name}, &w); err != nil {
		return models.Category{}, err
	}
	cat := w.toModel()
	if cat.Name == "" {
		cat.Name = name
	}
	return cat, nil
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, token, id, name string) (models.Category, error) {
	var w wireCategory
	if err := c.do(ctx, http.MethodPut, "/categories/"+id, token, categoryInput{Name: name}, &w); err != nil {
		return models.Category{}, err
	}
	cat := w.toModel()
	if cat.ID == "" {
		cat.ID = id
	}
	if cat.Name == "" {
		cat.Name = name
	}
	return cat, nil
}

// DeleteCategory removes a category by id.
func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+id, token, nil, nil)
}
