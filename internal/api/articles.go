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

// wireArticle is the raw article record as the backend serves it.
type wireArticle struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	ImageURL   *string       `json:"imageUrl"`
	CategoryID string        `json:"categoryId"`
	Category   *wireCategory `json:"category"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// toModel normalizes a wire record into the display shape: the nested
// category flattens into id/name, and a missing image gets the placeholder.
func (w wireArticle) toModel() models.Article {
	a := models.Article{
		ID:         w.ID,
		Title:      w.Title,
		Content:    w.Content,
		CategoryID: w.CategoryID,
		ImageURL:   models.PlaceholderImageURL,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
	if w.Category != nil {
		a.CategoryName = w.Category.Name
		if a.CategoryID == "" {
			a.CategoryID = w.Category.ID
		}
	}
	if w.ImageURL != nil && *w.ImageURL != "" {
		a.ImageURL = *w.ImageURL
	}
	return a
}

// ArticleInput is the payload for creating or updating an article.
type ArticleInput struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID string `json:"categoryId"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

// ListArticles fetches the full article collection. The endpoint is public;
// filtering and pagination happen portal-side over the returned slice.
func (c *Client) ListArticles(ctx context.Context) ([]models.Article, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/articles", "", nil, &raw); err != nil {
		return nil, err
	}

	records, err := decodeCollection[wireArticle](raw)
	if err != nil {
		return nil, &Error{Kind: KindFault, Err: err}
	}

	articles := make([]models.Article, 0, len(records))
	for _, r := range records {
		articles = append(articles, r.toModel())
	}
	return articles, nil
}

// GetArticle fetches a single article by id.
func (c *Client) GetArticle(ctx context.Context, id string) (models.Article, error) {
	var w wireArticle
	if err := c.do(ctx, http.MethodGet, "/articles/"+id, "", nil, &w); err != nil {
		return models.Article{}, err
	}
	return w.toModel(), nil
}

// CreateArticle submits a new article and returns the server's record.
func (c *Client) CreateArticle(ctx context.Context, token string, in ArticleInput) (models.Article, error) {
	var w wireArticle
	if err := c.do(ctx, http.MethodPost, "/articles", token, in, &w); err != nil {
		return models.Article{}, err
	}
	a := w.toModel()
	// Some backends echo a bare record without the nested category; keep
	// the submitted category id so the optimistic list patch stays coherent.
	if a.CategoryID == "" {
		a.CategoryID = in.CategoryID
	}
	return a, nil
}

// UpdateArticle replaces an article's fields and returns the updated record.
func (c *Client) UpdateArticle(ctx context.Context, token, id string, in ArticleInput) (models.Article, error) {
	var w wireArticle
	if err := c.do(ctx, http.MethodPut, "/articles/"+id, token, in, &w); err != nil {
		return models.Article{}, err
	}
	a := w.toModel()
	if a.ID == "" {
		a.ID = id
	}
	if a.CategoryID == "" {
		a.CategoryID = in.CategoryID
	}
	return a, nil
}

// DeleteArticle removes an article by id.
func (c *Client) DeleteArticle(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/articles/"+id, token, nil, nil)
}
