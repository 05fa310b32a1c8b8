package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/devhub/admin-console/internal/core/domain"
)

// Empty is the value of calls whose success carries no data.
type Empty struct{}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type AuthClient struct{ c *Client }

// Login does not require a credential. A success without a token is reported
// as a business failure.
func (a AuthClient) Login(ctx context.Context, username, password string) Result[LoginResponse] {
	res := do[LoginResponse](ctx, a.c, "auth", http.MethodPost, "/api/auth/login",
		map[string]string{"username": username, "password": password}, false)
	if res.OK() && res.Value.Token == "" {
		return Result[LoginResponse]{Err: &Error{Kind: KindBusiness, Message: "login response did not include a token"}}
	}
	return res
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryClient struct{ c *Client }

func (cc CategoryClient) List(ctx context.Context) Result[[]domain.Category] {
	return do[[]domain.Category](ctx, cc.c, "categories", http.MethodGet, "/api/categories", nil, true)
}

func (cc CategoryClient) Create(ctx context.Context, in CategoryInput) Result[domain.Category] {
	return do[domain.Category](ctx, cc.c, "categories", http.MethodPost, "/api/categories", in, true)
}

func (cc CategoryClient) Delete(ctx context.Context, id int64) Result[Empty] {
	return do[Empty](ctx, cc.c, "categories", http.MethodDelete, "/api/categories/"+strconv.FormatInt(id, 10), nil, true)
}

type PostClient struct{ c *Client }

// List fetches one moderation bucket; an empty status fetches every post.
func (pc PostClient) List(ctx context.Context, status domain.PostStatus) Result[[]domain.Post] {
	path := "/api/posts"
	if status != "" {
		path += "?" + url.Values{"status": {string(status)}}.Encode()
	}
	return do[[]domain.Post](ctx, pc.c, "posts", http.MethodGet, path, nil, true)
}

func (pc PostClient) UpdateStatus(ctx context.Context, id int64, status domain.PostStatus) Result[domain.Post] {
	return do[domain.Post](ctx, pc.c, "posts", http.MethodPut,
		"/api/posts/"+strconv.FormatInt(id, 10)+"/status",
		map[string]string{"status": string(status)}, true)
}

type UserClient struct{ c *Client }

func (uc UserClient) Search(ctx context.Context, term string) Result[[]domain.Account] {
	path := "/api/users"
	if term != "" {
		path += "?" + url.Values{"search": {term}}.Encode()
	}
	return do[[]domain.Account](ctx, uc.c, "users", http.MethodGet, path, nil, true)
}

func (uc UserClient) UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus) Result[domain.Account] {
	return do[domain.Account](ctx, uc.c, "users", http.MethodPut,
		"/api/users/"+strconv.FormatInt(id, 10)+"/status",
		map[string]string{"status": string(status)}, true)
}

type AuditClient struct{ c *Client }

func (ac AuditClient) Recent(ctx context.Context, limit int) Result[[]domain.AuditEntry] {
	path := "/api/audit"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	return do[[]domain.AuditEntry](ctx, ac.c, "audit", http.MethodGet, path, nil, true)
}
