// Package remote talks to the upstream Olive backend over its fixed REST contract.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/gommon/log"

	"olive/entities"
	"olive/pkg/apperr"
	fieldRepo "olive/pkg/field/repository"
	lifecycleRepo "olive/pkg/lifecycle/repository"
	taskRepo "olive/pkg/task/repository"
	userRepo "olive/pkg/user/repository"
)

const apiPrefix = "/api/v1"

var logger = log.New("remote")

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) Fields() fieldRepo.FieldRepository             { return fields{c} }
func (c *Client) Tasks() taskRepo.TaskRepository                { return tasks{c} }
func (c *Client) Users() userRepo.UserRepository                { return users{c} }
func (c *Client) Lifecycles() lifecycleRepo.LifecycleRepository { return lifecycles{c} }

func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, "health", "")
}

// do sends one request. resource and id only label NotFound errors.
func (c *Client) do(ctx context.Context, method, path string, in, out any, resource, id string) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return apperr.Wrap(apperr.CodeUnknown, "upstream "+method+" "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg := upstreamMessage(resp.Body)
		logger.Warnf("%s %s -> %d %s", method, path, resp.StatusCode, msg)
		switch resp.StatusCode {
		case http.StatusNotFound:
			return apperr.NotFound(resource, id)
		case http.StatusUnauthorized, http.StatusForbidden:
			return apperr.Unauthorized(msg)
		case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
			return apperr.Validation(msg)
		}
		return apperr.Wrap(apperr.CodeUnknown, fmt.Sprintf("upstream %s %s", method, path), fmt.Errorf("status %d: %s", resp.StatusCode, msg))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func upstreamMessage(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(b, &e) == nil {
		if e.Error != "" {
			return e.Error
		}
		if e.Message != "" {
			return e.Message
		}
	}
	return strings.TrimSpace(string(b))
}

func esc(s string) string { return url.PathEscape(s) }

// fields

type fields struct{ c *Client }

func (r fields) List(ctx context.Context) ([]entities.Field, error) {
	var out []entities.Field
	if err := r.c.do(ctx, http.MethodGet, apiPrefix+"/fields", nil, &out, "fields", ""); err != nil {
		return nil, err
	}
	return out, nil
}

func (r fields) FindByID(ctx context.Context, id string) (*entities.Field, error) {
	var out entities.Field
	if err := r.c.do(ctx, http.MethodGet, apiPrefix+"/fields/"+esc(id), nil, &out, "field", id); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r fields) Create(ctx context.Context, f *entities.Field) error {
	return r.c.do(ctx, http.MethodPost, apiPrefix+"/fields", f, f, "field", f.ID)
}

func (r fields) Update(ctx context.Context, f *entities.Field) error {
	return r.c.do(ctx, http.MethodPut, apiPrefix+"/fields/"+esc(f.ID), f, f, "field", f.ID)
}

func (r fields) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, apiPrefix+"/fields/"+esc(id), nil, nil, "field", id)
}

// tasks

type tasks struct{ c *Client }

func (r tasks) List(ctx context.Context, q taskRepo.TaskQuery) ([]entities.Task, error) {
	v := url.Values{}
	if q.FieldID != "" {
		v.Set("fieldId", q.FieldID)
	}
	if q.AssignedTo != "" {
		v.Set("assignedTo", q.AssignedTo)
	}
	path := apiPrefix + "/tasks"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}
	var out []entities.Task
	if err := r.c.do(ctx, http.MethodGet, path, nil, &out, "tasks", ""); err != nil {
		return nil, err
	}
	return out, nil
}

func (r tasks) FindByID(ctx context.Context, id string) (*entities.Task, error) {
	var out entities.Task
	if err := r.c.do(ctx, http.MethodGet, apiPrefix+"/tasks/"+esc(id), nil, &out, "task", id); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r tasks) Create(ctx context.Context, t *entities.Task) error {
	return r.c.do(ctx, http.MethodPost, apiPrefix+"/tasks", t, t, "task", t.ID)
}

func (r tasks) Update(ctx context.Context, t *entities.Task) error {
	return r.c.do(ctx, http.MethodPut, apiPrefix+"/tasks/"+esc(t.ID), t, t, "task", t.ID)
}

func (r tasks) AppendEvidence(ctx context.Context, taskID string, ev *entities.Evidence) error {
	return r.c.do(ctx, http.MethodPost, apiPrefix+"/tasks/"+esc(taskID)+"/evidence", ev, ev, "task", taskID)
}

// users

type users struct{ c *Client }

func (r users) List(ctx context.Context) ([]entities.User, error) {
	var out []entities.User
	if err := r.c.do(ctx, http.MethodGet, apiPrefix+"/users", nil, &out, "users", ""); err != nil {
		return nil, err
	}
	return out, nil
}

func (r users) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var out entities.User
	if err := r.c.do(ctx, http.MethodGet, apiPrefix+"/users/"+esc(id), nil, &out, "user", id); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r users) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var out []entities.User
	path := apiPrefix + "/users?" + url.Values{"email": {email}}.Encode()
	if err := r.c.do(ctx, http.MethodGet, path, nil, &out, "user", email); err != nil {
		return nil, err
	}
	for i := range out {
		if strings.EqualFold(out[i].Email, email) {
			return &out[i], nil
		}
	}
	return nil, apperr.NotFound("user", email)
}

func (r users) Create(ctx context.Context, u *entities.User) error {
	return r.c.do(ctx, http.MethodPost, apiPrefix+"/users", u, u, "user", u.ID)
}

// lifecycles

type lifecycles struct{ c *Client }

func (r lifecycles) FindByFieldID(ctx context.Context, fieldID string) (*entities.Lifecycle, error) {
	var out entities.Lifecycle
	if err := r.c.do(ctx, http.MethodGet, apiPrefix+"/fields/"+esc(fieldID)+"/lifecycle", nil, &out, "lifecycle", fieldID); err != nil {
		return nil, err
	}
	return &out, nil
}

// Progress calls the upstream progression endpoint, which moves the lifecycle and its field
// together.
func (r lifecycles) Progress(ctx context.Context, fieldID string) (*entities.Lifecycle, error) {
	var out entities.Lifecycle
	if err := r.c.do(ctx, http.MethodPost, apiPrefix+"/fields/"+esc(fieldID)+"/lifecycle/progress", nil, &out, "lifecycle", fieldID); err != nil {
		return nil, err
	}
	return &out, nil
}

// Save is refused: the upstream owns lifecycle records and only changes them through Progress.
func (r lifecycles) Save(_ context.Context, l *entities.Lifecycle) error {
	return apperr.Validationf("lifecycle of field %s is managed upstream", l.FieldID)
}

// DeleteByFieldID is a no-op; the upstream drops the lifecycle together with its field.
func (r lifecycles) DeleteByFieldID(context.Context, string) error { return nil }
